// Package blob uploads binary assets and returns their public download URL.
package blob

import (
	"context"
	"errors"
	"fmt"
)

// Bucket is a logical bucket, stored as an object name prefix.
type Bucket string

const (
	ProfileImages      Bucket = "UserProfileImages"
	ConversationImages Bucket = "ConversationImages"
	StoreImages        Bucket = "StoreImages"
)

var ErrUpload = errors.New("upload failed")

type Store interface {
	Upload(ctx context.Context, bucket Bucket, key string, data []byte) (string, error)
}

// ObjectName is the full object name of key inside bucket.
func ObjectName(bucket Bucket, key string) string {
	return string(bucket) + "/" + key
}

// ImageKey names a jpeg asset after id.
func ImageKey(id string) string {
	return id + ".jpg"
}

func uploadError(bucket Bucket, key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpload, ObjectName(bucket, key), err)
}
