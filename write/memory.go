package write

import (
	"slices"
	"strings"
	"sync"
)

// Change records one write seen by a MemoryWriter.
type Change struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

// MemoryWriter keeps artifacts in memory instead of on disk. It backs dry
// runs and tests.
type MemoryWriter struct {
	mu      sync.Mutex
	files   map[string][]byte
	changes []Change
}

func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{
		files: make(map[string][]byte),
	}
}

func (mw *MemoryWriter) Write(path string, content []byte, _ Options) error {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	mw.files[path] = slices.Clone(content)
	mw.changes = append(mw.changes, Change{Path: path, Size: len(content)})
	return nil
}

// File returns the last content written to path.
func (mw *MemoryWriter) File(path string) (string, bool) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	content, ok := mw.files[path]
	return string(content), ok
}

// Paths returns every written path in lexical order.
func (mw *MemoryWriter) Paths() []string {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	paths := make([]string, 0, len(mw.files))
	for path := range mw.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Changes returns the writes in path order.
func (mw *MemoryWriter) Changes() []Change {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	changes := slices.Clone(mw.changes)
	slices.SortStableFunc(changes, func(a, b Change) int {
		return strings.Compare(a.Path, b.Path)
	})
	return changes
}

// Reset forgets every write.
func (mw *MemoryWriter) Reset() {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	mw.files = make(map[string][]byte)
	mw.changes = nil
}
