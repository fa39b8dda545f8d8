package activity

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Activity is a timeline entry attached to any parent record
// (candidate, job, opportunity, payment).
type Activity struct {
	ID              string
	ParentType      string
	ParentID        string
	Type            string
	Subject         string
	Description     *string
	Status          Status
	DueDate         *time.Time
	StartTime       *time.Time
	EndTime         *time.Time
	Location        *string
	CallDuration    *int
	EmailRecipients *string
	CC              *string
	BCC             *string
	Attachments     []string
	AdditionalInfo  map[string]any
	UserID          *string
	// UserName is joined from users; "System" when no user recorded it.
	UserName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
