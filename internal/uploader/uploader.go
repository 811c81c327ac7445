// Package uploader puts training CSVs into S3 and hands back the
// s3:// location the Fraud Detector training job reads from.
package uploader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the subset of the S3 API used here. *s3.Client satisfies it.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes objects to one bucket.
type Uploader struct {
	api    API
	bucket string
}

// New constructs an Uploader for the bucket.
func New(api API, bucket string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("uploader: bucket is required")
	}
	return &Uploader{api: api, bucket: bucket}, nil
}

// UploadTrainingData uploads CSV bytes under key and returns the
// "s3://bucket/key" location.
func (u *Uploader) UploadTrainingData(ctx context.Context, key string, body io.Reader) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fmt.Errorf("uploader: object key is required")
	}
	_, err := u.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("uploader: put s3://%s/%s: %w", u.bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", u.bucket, key), nil
}

// ParseLocation splits an "s3://bucket/key" URI into bucket and key.
func ParseLocation(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("uploader: parse location %q: %w", location, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("uploader: expected s3:// scheme in %q", location)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("uploader: incomplete s3 location %q", location)
	}
	return bucket, key, nil
}
