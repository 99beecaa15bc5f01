// Package write provides the file-system capability generated artifacts are
// written through.
package write

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer stores one artifact. Implementations must be safe for concurrent use
// by multiple goroutines writing distinct paths.
type Writer interface {
	Write(path string, content []byte, options Options) error
}

// Options control how a single artifact is written.
type Options struct {
	// CreateDirs creates missing parent directories before writing.
	CreateDirs bool
	// Atomic writes to a temporary sibling and renames it into place.
	Atomic bool
	// Overwrite allows replacing a file that already exists.
	Overwrite bool
}

// DefaultOptions is what a generator run uses: every run fully regenerates
// the output tree.
var DefaultOptions = Options{CreateDirs: true, Atomic: true, Overwrite: true}

// DiskWriter writes artifacts to the local file system.
type DiskWriter struct {
	FileMode os.FileMode
	DirMode  os.FileMode
}

func NewDiskWriter() *DiskWriter {
	return &DiskWriter{
		FileMode: 0o644,
		DirMode:  0o755,
	}
}

func (dw *DiskWriter) Write(path string, content []byte, options Options) error {
	if options.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(path), dw.DirMode); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}
	}

	if !options.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists and overwrite is false: %s", path)
		}
	}

	if options.Atomic {
		return dw.atomicWrite(path, content)
	}

	return os.WriteFile(path, content, dw.FileMode)
}

func (dw *DiskWriter) atomicWrite(path string, content []byte) error {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := file.Name()

	if _, err := file.Write(content); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}

	if err := file.Chmod(dw.FileMode); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
