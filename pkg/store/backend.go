package store

import (
	"context"
	"errors"
)

var (
	// ErrBlocked is returned when the node refuses access to its config API.
	ErrBlocked = errors.New("config API is not available")
	// ErrNotFound is returned when no configuration exists yet.
	ErrNotFound = errors.New("configuration not found")
)

// Backend persists and retrieves the raw configuration text.
type Backend interface {
	// Name identifies the backend in logs and CLI output.
	Name() string
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	// Watch signals on the returned channel whenever the configuration may
	// have changed outside this process. The channel closes when ctx ends.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
