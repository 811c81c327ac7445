package profile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudkit/fraudkit/pkg/profile"
)

func TestReadSampleCSV(t *testing.T) {
	t.Parallel()

	in := "amount, country ,label\n1.5,us,good\n2.0,de,bad\n"
	sample, err := profile.ReadSampleCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"amount", "country", "label"}, sample.Columns)
	require.Len(t, sample.Records, 2)
	assert.Equal(t, profile.Record{"amount": "1.5", "country": "us", "label": "good"}, sample.Records[0])
	assert.Equal(t, profile.Record{"amount": "2.0", "country": "de", "label": "bad"}, sample.Records[1])
}

func TestReadSampleCSV_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"empty column name", "a,,c\n1,2,3\n"},
		{"duplicate header", "a,b,a\n1,2,3\n"},
		{"short row", "a,b\n1\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := profile.ReadSampleCSV(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestReadSampleCSV_HeaderOnly(t *testing.T) {
	t.Parallel()

	sample, err := profile.ReadSampleCSV(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sample.Columns)
	assert.Empty(t, sample.Records)
}
