package write

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
)

// ErrAlreadyWritten is returned by OnceWriter for a path it has seen before.
var ErrAlreadyWritten = errors.New("path already written")

// OnceWriter rejects a second write to the same path. Two artifacts of one
// build landing on the same file means their names collided.
type OnceWriter struct {
	next Writer

	mu   sync.Mutex
	seen map[string]bool
}

func NewOnceWriter(next Writer) *OnceWriter {
	return &OnceWriter{
		next: next,
		seen: make(map[string]bool),
	}
}

func (ow *OnceWriter) Write(path string, content []byte, options Options) error {
	key := filepath.Clean(path)

	ow.mu.Lock()
	if ow.seen[key] {
		ow.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyWritten, path)
	}
	ow.seen[key] = true
	ow.mu.Unlock()

	return ow.next.Write(path, content, options)
}
