package cache

import (
	"io"
	"log/slog"
	"sync"

	"github.com/joshuapare/iconcache/internal/mmfile"
)

// OpenOptions configures Open.
type OpenOptions struct {
	// NonBlocking fails with ErrLocked instead of waiting when another
	// process holds an exclusive lock on the file.
	NonBlocking bool

	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// File is a cache file mapped into memory. The Cache it exposes aliases the
// mapping, so nothing derived from it may be used after Close.
type File struct {
	mu     sync.Mutex
	m      *mmfile.Mapping
	cache  *Cache
	path   string
	logger *slog.Logger
}

// Open maps the cache at path read-only under a shared advisory lock and
// parses it.
func Open(path string, opts OpenOptions) (*File, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m, err := mmfile.Acquire(path, mmfile.Options{NonBlocking: opts.NonBlocking})
	if err != nil {
		return nil, wrapIOErr("open icon cache", err)
	}
	logger.Debug("mapped icon cache",
		"path", path,
		"size", m.Len(),
		"nonblocking", opts.NonBlocking)

	c, err := Parse(m.Bytes())
	if err != nil {
		_ = m.Close()
		logger.Debug("icon cache rejected", "path", path, "error", err)
		return nil, err
	}
	logger.Debug("parsed icon cache",
		"path", path,
		"buckets", c.BucketCount(),
		"directories", c.DirectoryCount())

	return &File{m: m, cache: c, path: path, logger: logger}, nil
}

// OpenNonBlocking is Open with NonBlocking set.
func OpenNonBlocking(path string) (*File, error) {
	return Open(path, OpenOptions{NonBlocking: true})
}

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }

// Cache returns the parsed cache, or ErrClosed after Close.
func (f *File) Cache() (*Cache, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cache == nil {
		return nil, ErrClosed
	}
	return f.cache, nil
}

// Close unmaps the file and releases the lock. It is safe to call more
// than once.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cache == nil {
		return nil
	}
	f.cache = nil
	if err := f.m.Close(); err != nil {
		return wrapIOErr("close icon cache", err)
	}
	f.logger.Debug("closed icon cache", "path", f.path)
	return nil
}
