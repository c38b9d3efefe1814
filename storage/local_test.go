package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalDocumentStore(dir, "http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, dir, store.BaseDir())

	result, err := store.Put(context.Background(), PutRequest{
		EntityType:  "task",
		EntityID:    "t1",
		FileName:    "notes.txt",
		ContentType: "text/plain",
	}, strings.NewReader("hello"))
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Size)
	assert.True(t, strings.HasPrefix(result.Path, "/attachments/task/t1/"))
	assert.True(t, strings.HasSuffix(result.Path, "-notes.txt"))
	assert.Equal(t, "http://localhost:8080"+result.Path, result.DownloadURL)

	rel := strings.TrimPrefix(result.Path, "/attachments/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Delete(context.Background(), result.Path))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// Deleting an already-gone path is not an error.
	require.NoError(t, store.Delete(context.Background(), result.Path))
}

func TestLocalPutSameNameTwice(t *testing.T) {
	store, err := NewLocalDocumentStore(t.TempDir(), "")
	require.NoError(t, err)

	req := PutRequest{EntityType: "billing", EntityID: "b1", FileName: "invoice.pdf"}
	first, err := store.Put(context.Background(), req, strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Put(context.Background(), req, strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "notes.txt", sanitizeFileName("notes.txt"))
	assert.Equal(t, "my-report-v2.pdf", sanitizeFileName("my report v2.pdf"))
	assert.Equal(t, "secret", sanitizeFileName("../../secret"))
	assert.Equal(t, "upload", sanitizeFileName("  "))
}
