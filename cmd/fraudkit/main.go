package main

import (
	"os"

	"github.com/fraudkit/fraudkit/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
