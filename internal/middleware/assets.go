package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"
)

const assetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"

// AssetsWithCache serves files from fsys and applies Cache-Control, Vary and
// ETag handling. Request paths are resolved relative to the root of fsys, so
// callers strip any mount prefix first. ETags are hashed on first request and
// recomputed when a file's size or modification time changes.
func AssetsWithCache(fsys fs.FS) http.Handler {
	etags := &etagCache{fsys: fsys, entries: map[string]etagEntry{}}
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", assetCacheControl)
		if et := etags.lookup(r.URL.Path); et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

type etagEntry struct {
	size    int64
	modTime time.Time
	etag    string
}

type etagCache struct {
	fsys    fs.FS
	mu      sync.RWMutex
	entries map[string]etagEntry
}

func (c *etagCache) lookup(urlPath string) string {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || !fs.ValidPath(name) {
		return ""
	}
	info, err := fs.Stat(c.fsys, name)
	if err != nil || info.IsDir() {
		return ""
	}

	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()
	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		return entry.etag
	}

	et, err := fileETag(c.fsys, name)
	if err != nil {
		return ""
	}
	c.mu.Lock()
	c.entries[name] = etagEntry{size: info.Size(), modTime: info.ModTime(), etag: et}
	c.mu.Unlock()
	return et
}

// NoDirListing answers 404 for directory paths instead of an index listing.
func NoDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func fileETag(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
