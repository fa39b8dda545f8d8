package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/storage"
)

type FileService interface {
	// Resume uploads
	UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string) (string, error)

	// Rendered invoice documents
	StoreInvoiceDocument(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
	OpenDocument(ctx context.Context, path string) (io.ReadCloser, error)

	// Entity-attached documents (candidates, jobs, opportunities)
	StoreEntityDocument(ctx context.Context, entityType string, filename string, contentType string, body io.Reader) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadResume uploads a candidate resume
func (s *fileServiceImpl) UploadResume(ctx context.Context, candidateID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".pdf", ".doc", ".docx"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type: only pdf, doc, docx allowed")
	}

	// Generate unique filename
	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", candidateID, uniqueID, ext)
	path := filepath.Join("resumes", candidateID, newFilename)

	contentType := "application/pdf"
	if ext != ".pdf" {
		contentType = "application/octet-stream"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return uploadedPath, nil
}

// StoreInvoiceDocument stores a rendered invoice and returns its locator
func (s *fileServiceImpl) StoreInvoiceDocument(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	path := filepath.Join("invoices", filename)

	uploadedPath, err := s.storage.Upload(ctx, body, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store invoice document: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) OpenDocument(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

// StoreEntityDocument stores an uploaded file under the entity type's
// folder with a generated name and returns its key.
func (s *fileServiceImpl) StoreEntityDocument(ctx context.Context, entityType string, filename string, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	path := filepath.Join("documents", entityType, uuid.New().String()+ext)

	uploadedPath, err := s.storage.Upload(ctx, body, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store document: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
