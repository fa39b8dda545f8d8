package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/document"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListByEntity(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &DocumentHandlerImpl{documentService: documentService}
}

func toDocumentResponse(d document.Document) document.DocumentResponse {
	return document.DocumentResponse{
		ID:         d.ID,
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		Name:       d.Name,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		CreatedAt:  d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Upload implements DocumentHandler
func (h *DocumentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 25MB)
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := document.UploadDocumentRequest{
		EntityType: r.FormValue("entity_type"),
		EntityID:   r.FormValue("entity_id"),
		Name:       r.FormValue("name"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Document file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	created, err := h.documentService.Upload(r.Context(), req, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		slog.Error("Failed to upload document", "entity_type", req.EntityType, "entity_id", req.EntityID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded successfully", toDocumentResponse(created))
}

// ListByEntity implements DocumentHandler
func (h *DocumentHandlerImpl) ListByEntity(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "entityType")
	entityID := chi.URLParam(r, "entityId")

	documents, err := h.documentService.ListByEntity(r.Context(), entityType, entityID)
	if err != nil {
		slog.Error("Failed to list documents", "entity_type", entityType, "entity_id", entityID, "error", err)
		response.HandleError(w, err)
		return
	}

	results := make([]document.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		results = append(results, toDocumentResponse(d))
	}

	response.Success(w, results)
}

// Download implements DocumentHandler
func (h *DocumentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, contentType, name, err := h.documentService.Download(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := io.Copy(w, body); err != nil {
		slog.Error("Failed to stream document", "document_id", id, "error", err)
	}
}

// Delete implements DocumentHandler
func (h *DocumentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete document", "document_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}
