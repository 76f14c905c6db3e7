package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"billing_saas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const defaultDocumentsBucket = "billing-saas-uploads"

// S3DocumentStore keeps invoice artifacts in S3-compatible object storage,
// one live object per key.
type S3DocumentStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

func NewS3DocumentStore(client *s3.Client) *S3DocumentStore {
	return &S3DocumentStore{
		client: client,
		bucket: getenvDefault("DOCUMENTS_BUCKET", defaultDocumentsBucket),
	}
}

func (s *S3DocumentStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		if isImmutableConflict(err) {
			return fmt.Errorf("%w: %s", interfaces.ErrObjectImmutable, key)
		}
		return err
	}
	return nil
}

func (s *S3DocumentStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// isImmutableConflict reports whether the backend refused the write because
// an existing object at the key cannot be overwritten (object lock,
// versioning or conditional-write policies). Transient classes (network,
// throttling, access) must stay untouched so they propagate as-is.
func isImmutableConflict(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ObjectAlreadyExists", "InvalidObjectState":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
