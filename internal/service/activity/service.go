package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/activity"
)

const (
	dateLayout = "2006-01-02"

	recentLimit    = 50
	upcomingWindow = 7
)

type ActivityServiceImpl struct {
	activity.ActivityRepository
}

func NewActivityService(activityRepository activity.ActivityRepository) activity.ActivityService {
	return &ActivityServiceImpl{ActivityRepository: activityRepository}
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	due, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse due date: %w", err)
	}
	return &due, nil
}

func (s *ActivityServiceImpl) Create(ctx context.Context, req activity.CreateActivityRequest) (activity.Activity, error) {
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return activity.Activity{}, err
	}

	status := activity.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	return s.ActivityRepository.Create(ctx, activity.Activity{
		ParentType:      req.ParentType,
		ParentID:        req.ParentID,
		Type:            req.Type,
		Subject:         req.Subject,
		Description:     req.Description,
		Status:          status,
		DueDate:         due,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        req.Location,
		CallDuration:    req.CallDuration,
		EmailRecipients: req.EmailRecipients,
		CC:              req.CC,
		BCC:             req.BCC,
		Attachments:     req.Attachments,
		AdditionalInfo:  req.AdditionalInfo,
	})
}

func (s *ActivityServiceImpl) ListRecent(ctx context.Context) ([]activity.Activity, error) {
	return s.ActivityRepository.ListRecent(ctx, recentLimit)
}

func (s *ActivityServiceImpl) ListUpcoming(ctx context.Context) ([]activity.Activity, error) {
	return s.ActivityRepository.ListUpcoming(ctx, upcomingWindow)
}

// Update applies the set fields over the stored activity and writes the
// merged record back.
func (s *ActivityServiceImpl) Update(ctx context.Context, id string, req activity.UpdateActivityRequest) (activity.Activity, error) {
	current, err := s.ActivityRepository.GetByID(ctx, id)
	if err != nil {
		return activity.Activity{}, err
	}

	if req.Subject != nil {
		current.Subject = *req.Subject
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.Status != nil {
		current.Status = *req.Status
	}
	if req.DueDate != nil {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return activity.Activity{}, err
		}
		current.DueDate = due
	}
	if req.StartTime != nil {
		current.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		current.EndTime = req.EndTime
	}
	if req.Location != nil {
		current.Location = req.Location
	}
	if req.CallDuration != nil {
		current.CallDuration = req.CallDuration
	}
	if req.EmailRecipients != nil {
		current.EmailRecipients = req.EmailRecipients
	}
	if req.CC != nil {
		current.CC = req.CC
	}
	if req.BCC != nil {
		current.BCC = req.BCC
	}
	if req.Attachments != nil {
		current.Attachments = req.Attachments
	}
	if req.AdditionalInfo != nil {
		current.AdditionalInfo = req.AdditionalInfo
	}

	return s.ActivityRepository.Update(ctx, id, current)
}
