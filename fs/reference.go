// Package fs provides file-based reference data for symcheck.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/symcheck"
)

// Ensure ReferenceSource implements symcheck.ReferenceSource at compile time.
var _ symcheck.ReferenceSource = (*ReferenceSource)(nil)

// ReferenceSource reads reference tables from a directory.
type ReferenceSource struct {
	dir string
}

// NewReferenceSource creates a ReferenceSource rooted at dir.
func NewReferenceSource(dir string) *ReferenceSource {
	return &ReferenceSource{dir: dir}
}

// Fetch reads the named table. Returns ENOTFOUND if the file does not exist.
func (s *ReferenceSource) Fetch(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", symcheck.Errorf(symcheck.EINVALID, "invalid table name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", symcheck.Errorf(symcheck.ENOTFOUND, "reference table %q not found", name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
