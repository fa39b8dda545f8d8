package document

import (
	"context"
	"io"
)

type DocumentService interface {
	// Upload stores the file bytes and persists the document metadata.
	Upload(ctx context.Context, req UploadDocumentRequest, filename, contentType string, size int64, file io.Reader) (Document, error)

	ListByEntity(ctx context.Context, entityType, entityID string) ([]Document, error)

	// Download opens the stored file of a document.
	Download(ctx context.Context, id string) (io.ReadCloser, string, string, error)

	// Delete removes the stored file and the metadata row.
	Delete(ctx context.Context, id string) error
}
