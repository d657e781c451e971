package uploader

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Local writes uploads to a directory on disk and returns the relative
// "/uploads/..." path stored on the record. The configured base URL is
// prepended only when rendering to clients.
type Local struct {
	Dir string
}

func NewLocal(dir string) *Local {
	return &Local{Dir: dir}
}

func (l *Local) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	name, err := objectName(filename, contentType)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(l.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return "/uploads/" + filepath.ToSlash(filepath.Join(folder, name)), nil
}

var _ Uploader = (*Local)(nil)
