// Package cache reads GTK icon-theme caches ("icon-theme.cache").
//
// # Overview
//
// gtk-update-icon-cache writes a hash-indexed map from icon names (e.g.
// "open-menu") to the list of images a theme provides for each name, one per
// theme directory. This package decodes that file in place: every value it
// returns is a view over the caller's buffer, and nothing is copied or
// materialised up front.
//
// # Parsing
//
// Parse validates the three structures every lookup depends on (the header,
// the hash table and the directory list) and fails with an *Error of kind
// ErrKindDecode when any of them is malformed:
//
//	c, err := cache.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	icon, ok := c.Lookup("mpv")
//
// Records further down (icons, images, image data, metadata) are decoded on
// demand. A malformed one is reported as absent (ok == false, or skipped
// during iteration) so that a single bad record cannot make the rest of the
// cache unusable.
//
// # Opening files
//
// Open maps a cache file read-only under a shared advisory lock:
//
//	f, err := cache.Open("/usr/share/icons/hicolor/icon-theme.cache", cache.OpenOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	c, _ := f.Cache()
//
// Views obtained from a File must not be used after Close.
//
// # Concurrency
//
// A *Cache and every view are immutable; any number of goroutines may read
// them concurrently.
package cache
