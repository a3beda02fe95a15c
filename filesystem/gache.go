package filesystem

import (
	"io"
	"os"
	"time"

	"github.com/metafates/gache"
)

// NewCache returns a gache cache persisted as JSON at path. A zero lifetime never expires.
func NewCache[T any](path string, lifetime time.Duration) *gache.Cache[T] {
	return gache.New[T](&gache.Options{
		Path:       path,
		Lifetime:   lifetime,
		FileSystem: cacheFs{},
	})
}

// cacheFs looks the backend up on every call, so caches created at package init
// follow a later SetMemMapFs.
type cacheFs struct{}

var _ gache.FileSystem = cacheFs{}

func (cacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return backend.OpenFile(name, flag, perm)
}

func (cacheFs) MkdirAll(path string, perm os.FileMode) error {
	return backend.MkdirAll(path, perm)
}
