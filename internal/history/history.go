package history

import (
	"strings"
	"time"
)

// Package history provides the local query journal. Only request metadata
// is recorded; response bodies are never stored.

// Entry is one recorded weather query.
type Entry struct {
	Time     time.Time `json:"time"`
	Provider string    `json:"provider"`
	City     string    `json:"city"`
	Kind     string    `json:"kind"`
}

// Store records queries and lists recent ones, newest first.
type Store interface {
	Close() error
	Record(e Entry) error
	Recent(limit int) ([]Entry, error)
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	EntryTTL        time.Duration
	CleanupInterval time.Duration
}

const (
	defaultEntryTTL        = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the journal backend for the given path. An empty path
// disables journaling entirely.
func NewStore(path string, opts Options) (Store, error) {
	if strings.TrimSpace(path) == "" {
		return noopStore{}, nil
	}
	return openBolt(path, normalizeOptions(opts))
}

func normalizeOptions(opts Options) Options {
	if opts.EntryTTL <= 0 {
		opts.EntryTTL = defaultEntryTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                { return nil }
func (noopStore) Record(Entry) error          { return nil }
func (noopStore) Recent(int) ([]Entry, error) { return nil, nil }
