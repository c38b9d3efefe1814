// Package storage is the boundary to the external document store the
// attachment gateway delegates to. The gateway only handles metadata
// and bindings; bytes go through a DocumentStore.
package storage

import (
	"context"
	"io"
)

// PutRequest describes an upload: the binding path segments plus the
// client-reported name and content type.
type PutRequest struct {
	EntityType  string
	EntityID    string
	FileName    string
	ContentType string
}

// PutResult reports where the stored document landed and how to fetch
// it back.
type PutResult struct {
	Path        string
	DownloadURL string
	Size        int64
}

// DocumentStore accepts bytes plus metadata and hands back a stable
// download URL. Implementations must tolerate Delete on a path that is
// already gone.
type DocumentStore interface {
	Put(ctx context.Context, req PutRequest, body io.Reader) (PutResult, error)
	Delete(ctx context.Context, path string) error
}
