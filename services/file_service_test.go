package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/storage"
)

// fakeDocumentStore records puts and deletes without touching disk.
type fakeDocumentStore struct {
	puts    []storage.PutRequest
	deletes []string
	putErr  error
}

func (f *fakeDocumentStore) Put(ctx context.Context, req storage.PutRequest, body io.Reader) (storage.PutResult, error) {
	if f.putErr != nil {
		return storage.PutResult{}, f.putErr
	}
	size, _ := io.Copy(io.Discard, body)
	f.puts = append(f.puts, req)
	path := "/attachments/" + req.EntityType + "/" + req.EntityID + "/" + req.FileName
	return storage.PutResult{
		Path:        path,
		DownloadURL: "http://localhost:8080" + path,
		Size:        size,
	}, nil
}

func (f *fakeDocumentStore) Delete(ctx context.Context, path string) error {
	f.deletes = append(f.deletes, path)
	return nil
}

func TestParseEntityType(t *testing.T) {
	for _, valid := range []string{"task", "billing"} {
		parsed, err := ParseEntityType(valid)
		require.NoError(t, err)
		assert.Equal(t, models.EntityType(valid), parsed)
	}

	_, err := ParseEntityType("project")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Invalid entity type. Must be 'task' or 'billing'.", err.Error())
}

func TestFileService_UploadAndList(t *testing.T) {
	docs := &fakeDocumentStore{}
	svc := NewFileService(repositories.NewMemoryStore(), docs)

	file, err := svc.Upload(context.Background(), models.EntityTask, "t1",
		"design-mockup.pdf", "application/pdf", strings.NewReader("%PDF-"))
	require.NoError(t, err)
	assert.NotEmpty(t, file.ID)
	assert.Equal(t, models.EntityTask, file.EntityType)
	assert.Equal(t, "t1", file.EntityID)
	assert.Equal(t, int64(5), file.Size)
	assert.Contains(t, file.DownloadURL, file.Path)
	require.Len(t, docs.puts, 1)

	files, err := svc.ListAttachments(models.EntityTask, "t1")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, file.ID, files[0].ID)

	// Other bindings stay empty.
	files, err = svc.ListAttachments(models.EntityBilling, "t1")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileService_UploadRequiresName(t *testing.T) {
	svc := NewFileService(repositories.NewMemoryStore(), &fakeDocumentStore{})

	_, err := svc.Upload(context.Background(), models.EntityTask, "t1", "  ", "text/plain", strings.NewReader("x"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestFileService_UploadStoreFailure(t *testing.T) {
	docs := &fakeDocumentStore{putErr: errors.New("disk full")}
	svc := NewFileService(repositories.NewMemoryStore(), docs)

	_, err := svc.Upload(context.Background(), models.EntityTask, "t1", "a.txt", "text/plain", strings.NewReader("x"))
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
	assert.False(t, apperrors.IsNotFound(err))

	// Nothing was recorded for the failed upload.
	files, listErr := svc.ListAttachments(models.EntityTask, "t1")
	require.NoError(t, listErr)
	assert.Empty(t, files)
}

func TestFileService_DeleteRemovesMetadataAndBytes(t *testing.T) {
	docs := &fakeDocumentStore{}
	svc := NewFileService(repositories.NewMemoryStore(), docs)

	file, err := svc.Upload(context.Background(), models.EntityBilling, "b1",
		"invoice-001.pdf", "application/pdf", strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttachment(context.Background(), file.ID))
	require.Len(t, docs.deletes, 1)
	assert.Equal(t, file.Path, docs.deletes[0])

	err = svc.DeleteAttachment(context.Background(), file.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
