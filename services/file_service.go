package services

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/storage"
)

// FileService is the attachment gateway: it binds uploaded documents
// to a task or billing service and keeps the metadata record. The file
// content itself is never inspected here.
type FileService struct {
	store *repositories.Store
	docs  storage.DocumentStore
}

// NewFileService creates a new file service instance
func NewFileService(store *repositories.Store, docs storage.DocumentStore) *FileService {
	return &FileService{store: store, docs: docs}
}

// ParseEntityType validates the path segment naming the owning entity
// kind.
func ParseEntityType(raw string) (models.EntityType, error) {
	t := models.EntityType(raw)
	if !t.Valid() {
		return "", apperrors.NewValidation("Invalid entity type. Must be 'task' or 'billing'.")
	}
	return t, nil
}

// ListAttachments returns the attachments bound to (entityType,
// entityId). No attachments is an empty list, not an error.
func (s *FileService) ListAttachments(entityType models.EntityType, entityID string) ([]models.FileAttachment, error) {
	return s.store.Files.FindByBinding(entityType, entityID)
}

// GetAttachment retrieves one attachment by its file id.
func (s *FileService) GetAttachment(fileID string) (models.FileAttachment, error) {
	return s.store.Files.FindByID(fileID)
}

// Upload stores the document bytes through the external store and
// records the attachment metadata bound to exactly one entity.
func (s *FileService) Upload(ctx context.Context, entityType models.EntityType, entityID, fileName, contentType string, body io.Reader) (models.FileAttachment, error) {
	if strings.TrimSpace(fileName) == "" {
		return models.FileAttachment{}, apperrors.NewValidation("File name is required")
	}

	result, err := s.docs.Put(ctx, storage.PutRequest{
		EntityType:  string(entityType),
		EntityID:    entityID,
		FileName:    fileName,
		ContentType: contentType,
	}, body)
	if err != nil {
		return models.FileAttachment{}, apperrors.NewStore(err)
	}

	file := models.FileAttachment{
		EntityType:  entityType,
		EntityID:    entityID,
		Name:        fileName,
		Path:        result.Path,
		ContentType: contentType,
		Size:        result.Size,
		DownloadURL: result.DownloadURL,
	}
	return s.store.Files.Create(file)
}

// DeleteAttachment removes the metadata record, then the stored bytes.
// Blob removal is best-effort: the metadata row is the authoritative
// record, and the two are not atomic together.
func (s *FileService) DeleteAttachment(ctx context.Context, fileID string) error {
	file, err := s.store.Files.FindByID(fileID)
	if err != nil {
		return err
	}
	if err := s.store.Files.Delete(fileID); err != nil {
		return err
	}
	if err := s.docs.Delete(ctx, file.Path); err != nil {
		log.Printf("Warning: failed to remove stored document %s: %v", file.Path, err)
	}
	return nil
}
