package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BlobStore persists uploaded files and returns a URL the frontend can use.
type BlobStore interface {
	Save(filename string, r io.Reader) (string, error)
}

type localStore struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func NewLocalStore(dir, baseURL string) (BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage.NewLocalStore: %w", err)
	}
	return &localStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}, nil
}

func (s *localStore) Save(filename string, r io.Reader) (string, error) {
	// Keep only the base name so a crafted filename cannot escape the upload dir.
	name := fmt.Sprintf("img_%d_%s", s.now().Unix(), filepath.Base(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("localStore.Save create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("localStore.Save copy: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
