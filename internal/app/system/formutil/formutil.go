// Package formutil handles multipart upload forms.
//
// Spreadsheet uploads are spooled to a temp file in the configured
// upload directory before parsing; the ingest layer owns the file from
// there and removes it when done. The stored name is random so that
// concurrent uploads of identically named exports never collide, with
// the original extension kept because it selects the parser.
package formutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveUpload copies src into dir under a random name that preserves the
// extension of originalName, and returns the path of the saved file.
// A partial copy is removed before the error is returned.
func SaveUpload(src io.Reader, originalName, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
