package storage

import (
	"context"
	"sync"
)

// ObjectStore saves public objects and returns the URL they are served from.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// Memory keeps objects in process and serves them under a fake base URL.
type Memory struct {
	mu      sync.Mutex
	BaseURL string
	Objects map[string][]byte
}

func NewMemory(baseURL string) *Memory {
	return &Memory{BaseURL: baseURL, Objects: map[string][]byte{}}
}

func (m *Memory) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = append([]byte(nil), body...)
	return m.BaseURL + "/" + key, nil
}

var _ ObjectStore = (*Memory)(nil)
