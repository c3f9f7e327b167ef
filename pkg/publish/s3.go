package publish

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the slice of the S3 client Bucket needs. *s3.Client
// satisfies it; tests substitute a fake.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Bucket stores published files as S3 objects.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	dst := publish.NewBucket(s3.NewFromConfig(cfg), "my-site", "public/")
type Bucket struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewBucket creates an S3 destination. Objects are written as
// prefix+path with a content type derived from the extension.
func NewBucket(client PutObjectAPI, bucket, prefix string) *Bucket {
	return &Bucket{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Store uploads body as one object.
func (b *Bucket) Store(ctx context.Context, relPath string, body []byte) error {
	clean, ok := sanitizeRelPath(relPath)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadPath, relPath)
	}

	key := b.prefix + clean
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(b.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentTypeFor(clean)),
		CacheControl: aws.String(cacheControlFor(clean)),
	})
	if err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}
	return nil
}

// contentTypeFor maps a path to its Content-Type, defaulting to
// octet-stream for unknown extensions.
func contentTypeFor(p string) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// cacheControlFor picks a caching strategy. Fingerprinted assets are
// immutable; everything else revalidates hourly.
func cacheControlFor(p string) string {
	if isFingerprinted(p) {
		return "public, max-age=31536000, immutable"
	}
	return "public, max-age=3600, must-revalidate"
}

// isFingerprinted checks if a file path carries a content hash in its
// name, e.g. "app.a1b2c3d4.css".
func isFingerprinted(filePath string) bool {
	base := path.Base(filePath)

	parts := strings.Split(base, ".")
	if len(parts) < 3 {
		return false
	}

	// The second-to-last part (before the extension) must look like a
	// hex hash of 8+ characters.
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
