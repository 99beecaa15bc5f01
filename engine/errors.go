package engine

import (
	"errors"
	"fmt"

	"github.com/cpcf/iconforge/catalog"
	"github.com/cpcf/iconforge/format"
	"github.com/cpcf/iconforge/write"
)

// ErrWriteFailure marks an artifact the file system refused.
var ErrWriteFailure = errors.New("write failure")

// ArtifactError reports the artifact a build stopped at.
type ArtifactError struct {
	Path   string
	Format format.Format
	Err    error
}

func newArtifactError(path string, f format.Format, err error) *ArtifactError {
	kind := ErrWriteFailure
	if errors.Is(err, write.ErrAlreadyWritten) {
		kind = catalog.ErrDuplicateComponentName
	}
	return &ArtifactError{
		Path:   path,
		Format: f,
		Err:    fmt.Errorf("%w: %w", kind, err),
	}
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}
