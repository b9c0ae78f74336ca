package blob

import (
	"context"
	"fmt"
	"sync"
)

// Memory keeps uploads in process. Failures can be injected per object.
type Memory struct {
	mu       sync.Mutex
	objects  map[string][]byte
	failures map[string]error
	hook     func(ctx context.Context, bucket Bucket, key string, data []byte) error
	uploads  []string
}

func NewMemory() *Memory {
	return &Memory{
		objects:  make(map[string][]byte),
		failures: make(map[string]error),
	}
}

func (m *Memory) Upload(ctx context.Context, bucket Bucket, key string, data []byte) (string, error) {
	object := ObjectName(bucket, key)

	m.mu.Lock()
	hook := m.hook
	failure := m.failures[object]
	m.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, bucket, key, data); err != nil {
			return "", uploadError(bucket, key, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return "", uploadError(bucket, key, err)
	}
	if failure != nil {
		return "", uploadError(bucket, key, failure)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[object] = append([]byte(nil), data...)
	m.uploads = append(m.uploads, object)
	return URL(object), nil
}

// URL is the download URL Memory returns for object.
func URL(object string) string {
	return fmt.Sprintf("mem://%s", object)
}

// FailOn makes uploads of key in bucket fail with err.
func (m *Memory) FailOn(bucket Bucket, key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[ObjectName(bucket, key)] = err
}

// OnUpload runs fn before every upload, a non-nil result fails it.
func (m *Memory) OnUpload(fn func(ctx context.Context, bucket Bucket, key string, data []byte) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hook = fn
}

func (m *Memory) Object(bucket Bucket, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[ObjectName(bucket, key)]
	return data, ok
}

// Uploaded lists stored object names in completion order.
func (m *Memory) Uploaded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.uploads...)
}
