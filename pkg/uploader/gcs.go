package uploader

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
)

// GCS stores uploads in a Google Cloud Storage bucket and returns the
// object's public URL.
type GCS struct {
	Client *storage.Client
	Bucket string
}

func NewGCS(client *storage.Client, bucket string) *GCS {
	return &GCS{Client: client, Bucket: bucket}
}

func (g *GCS) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	name, err := objectName(filename, contentType)
	if err != nil {
		return "", err
	}
	objectPath := path.Join(folder, name)
	wc := g.Client.Bucket(g.Bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.Bucket, objectPath), nil
}

var _ Uploader = (*GCS)(nil)
