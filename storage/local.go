package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalDocumentStore keeps attachment bytes on the local filesystem
// under baseDir and serves them back under publicBase (the router
// mounts baseDir at /attachments).
type LocalDocumentStore struct {
	baseDir    string
	publicBase string
}

// NewLocalDocumentStore creates the base directory if needed.
func NewLocalDocumentStore(baseDir, publicBase string) (*LocalDocumentStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachments dir: %w", err)
	}
	return &LocalDocumentStore{
		baseDir:    baseDir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

func (s *LocalDocumentStore) Put(ctx context.Context, req PutRequest, body io.Reader) (PutResult, error) {
	// A fresh uuid prefix keeps concurrent uploads of the same file
	// name from colliding.
	name := sanitizeFileName(req.FileName)
	relPath := filepath.Join(req.EntityType, req.EntityID, uuid.NewString()+"-"+name)

	fullPath := filepath.Join(s.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return PutResult{}, fmt.Errorf("failed to create attachment dir: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return PutResult{}, fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, body)
	if err != nil {
		os.Remove(fullPath)
		return PutResult{}, fmt.Errorf("failed to write attachment: %w", err)
	}

	urlPath := "/attachments/" + filepath.ToSlash(relPath)
	return PutResult{
		Path:        urlPath,
		DownloadURL: s.publicBase + urlPath,
		Size:        size,
	}, nil
}

// Delete removes the stored bytes. A path that is already gone is not
// an error; metadata is the authoritative record.
func (s *LocalDocumentStore) Delete(ctx context.Context, path string) error {
	rel := strings.TrimPrefix(path, "/attachments/")
	full := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	err := os.Remove(full)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// BaseDir exposes the root so the router can mount it for downloads.
func (s *LocalDocumentStore) BaseDir() string {
	return s.baseDir
}

func sanitizeFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}
