// Package cache keeps the last raw API payload for each cached resource kind
// in a flat file so repeated invocations can skip the network.
package cache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Kind names a cached resource category.
type Kind string

const (
	Projects   Kind = "projects"
	Workspaces Kind = "workspaces"
	Clients    Kind = "clients"
)

// Kinds lists every cached kind.
var Kinds = []Kind{Projects, Workspaces, Clients}

const secondsPerDay = 60 * 60 * 24

// Cache is a directory of <kind>.cache files. Concurrent invocations are not
// coordinated: the last writer wins.
type Cache struct {
	dir        string
	enabled    bool
	maxAgeDays float64
	log        *slog.Logger
	now        func() time.Time
}

// New creates dir if needed. A maxAgeDays of zero or less disables expiry.
func New(dir string, enabled bool, maxAgeDays float64, log *slog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: create %s: %w", dir, err)
	}
	return &Cache{
		dir:        dir,
		enabled:    enabled,
		maxAgeDays: maxAgeDays,
		log:        log,
		now:        time.Now,
	}, nil
}

// Enabled reports whether reads may be served from disk.
func (c *Cache) Enabled() bool { return c.enabled }

// Path returns the file backing kind.
func (c *Cache) Path(kind Kind) string {
	return filepath.Join(c.dir, string(kind)+".cache")
}

// Read returns the cached payload for kind, or nil when the cache is disabled,
// expired, missing, unreadable or empty.
func (c *Cache) Read(kind Kind) []byte {
	if !c.enabled {
		return nil
	}
	path := c.Path(kind)
	if c.maxAgeDays > 0 {
		fi, err := os.Stat(path)
		if err != nil {
			return nil
		}
		if c.expired(fi.ModTime()) {
			c.log.Info("cache is expired", slog.String("kind", string(kind)), slog.Time("modified", fi.ModTime()))
			return nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

// Write replaces the payload for kind. Failures are logged and otherwise ignored.
func (c *Cache) Write(kind Kind, data []byte) {
	path := c.Path(kind)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.log.Warn("failed to update cache", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	c.log.Debug("cache updated", slog.String("kind", string(kind)), slog.Int("bytes", len(data)))
}

func (c *Cache) expired(modified time.Time) bool {
	age := float64(c.now().Unix()-modified.Unix()) / secondsPerDay
	return age > c.maxAgeDays
}
