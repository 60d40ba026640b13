// Package s3store implements the document store port on top of S3-compatible
// object storage.
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store keeps rental agreements, deposit receipts and damage photos in a
// single bucket.
type Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewStore creates an S3-backed document store. publicURL is the base under
// which stored keys are reachable, without a trailing slash.
func NewStore(client *s3.Client, bucket string, publicURL string) *Store {
	return &Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Put stores a document under the given key, overwriting any previous content.
func (s *Store) Put(ctx context.Context, key string, content []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}

	return nil
}

// Get retrieves a previously stored document.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s: %w", key, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %s: %w", key, err)
	}

	return content, nil
}

// URL returns a link under which the document can be fetched.
func (s *Store) URL(key string) string {
	return s.publicURL + "/" + key
}
