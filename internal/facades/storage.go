package facades

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
)

// ObjectStorageFacade wraps an S3-compatible bucket holding export artifacts.
type ObjectStorageFacade struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	linkTTL time.Duration
}

// NewObjectStorageFacade creates a facade over the given client and bucket.
// Presigned retrieval links expire after linkTTL.
func NewObjectStorageFacade(client *s3.Client, bucket string, linkTTL time.Duration) *ObjectStorageFacade {
	return &ObjectStorageFacade{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		linkTTL: linkTTL,
	}
}

// Put uploads a finished export body under the given key, tagged with the
// format's content type. An existing object under the same key is replaced.
func (f *ObjectStorageFacade) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})

	logger.Log.Infow(
		"put object",
		"bucket", f.bucket,
		"key", key,
		"content_type", contentType,
		"size", len(body),
		"error", err,
	)

	return err
}

// PresignGet returns a time-limited retrieval link for a stored object.
func (f *ObjectStorageFacade) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := f.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(f.linkTTL))
	if err != nil {
		logger.Log.Errorw("failed to presign object", "bucket", f.bucket, "key", key, "error", err)
		return "", err
	}
	return req.URL, nil
}
