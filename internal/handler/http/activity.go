package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/activity"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/handler/http/response"
)

type ActivityHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByParent(w http.ResponseWriter, r *http.Request)
	ListRecent(w http.ResponseWriter, r *http.Request)
	ListOverdue(w http.ResponseWriter, r *http.Request)
	ListUpcoming(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ActivityHandlerImpl struct {
	activityService activity.ActivityService
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &ActivityHandlerImpl{activityService: activityService}
}

func toActivityResponse(a activity.Activity) activity.ActivityResponse {
	var dueDate *string
	if a.DueDate != nil {
		formatted := a.DueDate.Format("2006-01-02")
		dueDate = &formatted
	}

	return activity.ActivityResponse{
		ID:              a.ID,
		ParentType:      a.ParentType,
		ParentID:        a.ParentID,
		Type:            a.Type,
		Subject:         a.Subject,
		Description:     a.Description,
		Status:          a.Status,
		DueDate:         dueDate,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Location:        a.Location,
		CallDuration:    a.CallDuration,
		EmailRecipients: a.EmailRecipients,
		CC:              a.CC,
		BCC:             a.BCC,
		Attachments:     a.Attachments,
		AdditionalInfo:  a.AdditionalInfo,
		UserName:        a.UserName,
		CreatedAt:       a.CreatedAt,
	}
}

func toActivityResponses(activities []activity.Activity) []activity.ActivityResponse {
	results := make([]activity.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		results = append(results, toActivityResponse(a))
	}
	return results
}

// Create implements ActivityHandler
func (h *ActivityHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req activity.CreateActivityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.activityService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create activity", "parent_type", req.ParentType, "parent_id", req.ParentID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity created successfully", toActivityResponse(created))
}

// ListByParent implements ActivityHandler
func (h *ActivityHandlerImpl) ListByParent(w http.ResponseWriter, r *http.Request) {
	parentType := chi.URLParam(r, "parentType")
	parentID := chi.URLParam(r, "parentId")

	activities, err := h.activityService.ListByParent(r.Context(), parentType, parentID)
	if err != nil {
		slog.Error("Failed to list activities", "parent_type", parentType, "parent_id", parentID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toActivityResponses(activities))
}

// ListRecent implements ActivityHandler
func (h *ActivityHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.ListRecent(r.Context())
	if err != nil {
		slog.Error("Failed to list recent activities", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toActivityResponses(activities))
}

// ListOverdue implements ActivityHandler
func (h *ActivityHandlerImpl) ListOverdue(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.ListOverdue(r.Context())
	if err != nil {
		slog.Error("Failed to list overdue activities", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toActivityResponses(activities))
}

// ListUpcoming implements ActivityHandler
func (h *ActivityHandlerImpl) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.ListUpcoming(r.Context())
	if err != nil {
		slog.Error("Failed to list upcoming activities", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toActivityResponses(activities))
}

// Update implements ActivityHandler
func (h *ActivityHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req activity.UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.activityService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Failed to update activity", "activity_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity updated successfully", toActivityResponse(updated))
}

// Delete implements ActivityHandler
func (h *ActivityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.activityService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete activity", "activity_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity deleted successfully", nil)
}
