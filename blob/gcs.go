package blob

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const downloadTokenKey = "firebaseStorageDownloadTokens"

var errEmptyData = errors.New("empty data")

// GCS stores objects in a Firebase Storage bucket.
type GCS struct {
	bucket *storage.BucketHandle
	name   string
}

// NewGCS wraps a bucket handle, name is the bucket name used in download
// URLs.
func NewGCS(bucket *storage.BucketHandle, name string) *GCS {
	return &GCS{bucket: bucket, name: name}
}

func (g *GCS) Upload(ctx context.Context, bucket Bucket, key string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", uploadError(bucket, key, errEmptyData)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	object := ObjectName(bucket, key)
	token := uuid.NewString()

	w := g.bucket.Object(object).NewWriter(ctx)
	w.ContentType = http.DetectContentType(data)
	w.Metadata = map[string]string{downloadTokenKey: token}

	if _, err := w.Write(data); err != nil {
		// cancelling before Close discards the partial object
		cancel()
		_ = w.Close()
		return "", uploadError(bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return "", uploadError(bucket, key, err)
	}
	return DownloadURL(g.name, object, token), nil
}

// DownloadURL is the Firebase token URL of an object.
func DownloadURL(bucketName, object, token string) string {
	return fmt.Sprintf(
		"https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucketName,
		url.PathEscape(object),
		url.QueryEscape(token),
	)
}
