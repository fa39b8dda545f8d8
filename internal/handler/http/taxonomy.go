package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/taxonomy"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type TaxonomyHandler interface {
	CreateTechnology(w http.ResponseWriter, r *http.Request)
	ListTechnologies(w http.ResponseWriter, r *http.Request)
	DeleteTechnology(w http.ResponseWriter, r *http.Request)
	CreateDomain(w http.ResponseWriter, r *http.Request)
	ListDomainsByTechnology(w http.ResponseWriter, r *http.Request)
	DeleteDomain(w http.ResponseWriter, r *http.Request)
	CreateSkill(w http.ResponseWriter, r *http.Request)
	ListSkillsByDomain(w http.ResponseWriter, r *http.Request)
	DeleteSkill(w http.ResponseWriter, r *http.Request)
}

type TaxonomyHandlerImpl struct {
	taxonomyService taxonomy.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService taxonomy.TaxonomyService) TaxonomyHandler {
	return &TaxonomyHandlerImpl{taxonomyService: taxonomyService}
}

// CreateTechnology implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) CreateTechnology(w http.ResponseWriter, r *http.Request) {
	var req taxonomy.CreateTechnologyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.taxonomyService.CreateTechnology(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create technology", "name", req.Name, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Technology created successfully", created)
}

// ListTechnologies implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	technologies, err := h.taxonomyService.ListTechnologies(r.Context())
	if err != nil {
		slog.Error("Failed to list technologies", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, technologies)
}

// DeleteTechnology implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) DeleteTechnology(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taxonomyService.DeleteTechnology(r.Context(), id); err != nil {
		slog.Error("Failed to delete technology", "technology_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Technology deleted successfully", nil)
}

// CreateDomain implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) CreateDomain(w http.ResponseWriter, r *http.Request) {
	var req taxonomy.CreateDomainRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.taxonomyService.CreateDomain(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create domain", "name", req.Name, "technology_id", req.TechnologyID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Domain created successfully", created)
}

// ListDomainsByTechnology implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) ListDomainsByTechnology(w http.ResponseWriter, r *http.Request) {
	technologyID := chi.URLParam(r, "id")

	domains, err := h.taxonomyService.ListDomainsByTechnology(r.Context(), technologyID)
	if err != nil {
		slog.Error("Failed to list domains", "technology_id", technologyID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, domains)
}

// DeleteDomain implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) DeleteDomain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taxonomyService.DeleteDomain(r.Context(), id); err != nil {
		slog.Error("Failed to delete domain", "domain_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Domain deleted successfully", nil)
}

// CreateSkill implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req taxonomy.CreateSkillRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.taxonomyService.CreateSkill(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create skill", "name", req.Name, "domain_id", req.DomainID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Skill created successfully", created)
}

// ListSkillsByDomain implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) ListSkillsByDomain(w http.ResponseWriter, r *http.Request) {
	domainID := chi.URLParam(r, "id")

	skills, err := h.taxonomyService.ListSkillsByDomain(r.Context(), domainID)
	if err != nil {
		slog.Error("Failed to list skills", "domain_id", domainID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, skills)
}

// DeleteSkill implements TaxonomyHandler
func (h *TaxonomyHandlerImpl) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taxonomyService.DeleteSkill(r.Context(), id); err != nil {
		slog.Error("Failed to delete skill", "skill_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Skill deleted successfully", nil)
}
