package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactStore guarda os PDFs de laudo. O registro de credenciais só
// conhece a referência opaca devolvida por Put.
type ArtifactStore interface {
	Put(ctx context.Context, ref string, content io.Reader) error
	Get(ctx context.Context, ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
}

var ErrArtifactNotFound = errors.New("artifact not found")

// --------------------------------------------------
// Disco local (dev / testes)
// --------------------------------------------------

type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

func (s *DiskStore) path(ref string) string {
	// refs são geradas internamente, mas nunca deixamos escapar do baseDir
	clean := filepath.Clean("/" + strings.ReplaceAll(ref, "\\", "/"))
	return filepath.Join(s.baseDir, clean)
}

func (s *DiskStore) Put(ctx context.Context, ref string, content io.Reader) error {
	dst := s.path(ref)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, content)
	return err
}

func (s *DiskStore) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(ref))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrArtifactNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *DiskStore) Delete(ctx context.Context, ref string) error {
	err := os.Remove(s.path(ref))
	if errors.Is(err, os.ErrNotExist) {
		return ErrArtifactNotFound
	}
	return err
}

// Compile-time check
var _ ArtifactStore = (*DiskStore)(nil)
