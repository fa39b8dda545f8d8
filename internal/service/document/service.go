package document

import (
	"context"
	"io"
	"log/slog"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/document"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/service/file"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
	fileService file.FileService
}

func NewDocumentService(
	documentRepository document.DocumentRepository,
	fileService file.FileService,
) document.DocumentService {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepository,
		fileService:        fileService,
	}
}

func (s *DocumentServiceImpl) Upload(ctx context.Context, req document.UploadDocumentRequest, filename, contentType string, size int64, body io.Reader) (document.Document, error) {
	key, err := s.fileService.StoreEntityDocument(ctx, req.EntityType, filename, contentType, body)
	if err != nil {
		return document.Document{}, err
	}

	name := req.Name
	if name == "" {
		name = filename
	}

	created, err := s.DocumentRepository.Create(ctx, document.Document{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Name:       name,
		FileKey:    key,
		FileType:   contentType,
		FileSize:   size,
	})
	if err != nil {
		// The metadata row is the source of truth; an orphaned file is
		// cleaned up best effort.
		if delErr := s.fileService.DeleteFile(ctx, key); delErr != nil {
			slog.Warn("Failed to remove orphaned document file", "file_key", key, "error", delErr)
		}
		return document.Document{}, err
	}

	return created, nil
}

func (s *DocumentServiceImpl) Download(ctx context.Context, id string) (io.ReadCloser, string, string, error) {
	d, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, "", "", err
	}

	body, err := s.fileService.OpenDocument(ctx, d.FileKey)
	if err != nil {
		return nil, "", "", err
	}

	return body, d.FileType, d.Name, nil
}

func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	d, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fileService.DeleteFile(ctx, d.FileKey); err != nil {
		slog.Warn("Failed to delete document file", "document_id", id, "file_key", d.FileKey, "error", err)
	}

	return s.DocumentRepository.Delete(ctx, id)
}
