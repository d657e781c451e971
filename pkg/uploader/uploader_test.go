package uploader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "", AbsoluteURL("http://localhost:8080", ""))
	assert.Equal(t, "http://localhost:8080/uploads/users/dl.png", AbsoluteURL("http://localhost:8080", "/uploads/users/dl.png"))
	assert.Equal(t, "http://localhost:8080/uploads/users/dl.png", AbsoluteURL("http://localhost:8080/", "/uploads/users/dl.png"))
	assert.Equal(t, "https://storage.googleapis.com/b/o.png", AbsoluteURL("http://localhost:8080", "https://storage.googleapis.com/b/o.png"))
}

func TestLocalUpload(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir)

	path, err := l.Upload(context.Background(), "motorcycles", "mt07.jpg", "image/jpeg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/motorcycles/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	// The file lands under the configured directory.
	onDisk := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalUploadRejectsUnsupportedType(t *testing.T) {
	l := NewLocal(t.TempDir())

	_, err := l.Upload(context.Background(), "motorcycles", "notes.pdf", "application/pdf", strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
