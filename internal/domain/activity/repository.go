package activity

import "context"

type ActivityRepository interface {
	Create(ctx context.Context, a Activity) (Activity, error)
	GetByID(ctx context.Context, id string) (Activity, error)
	ListByParent(ctx context.Context, parentType, parentID string) ([]Activity, error)
	ListRecent(ctx context.Context, limit int) ([]Activity, error)

	// ListOverdue returns non-completed activities whose due date passed.
	ListOverdue(ctx context.Context) ([]Activity, error)

	// ListUpcoming returns non-completed activities due within the
	// given number of days from today.
	ListUpcoming(ctx context.Context, days int) ([]Activity, error)

	Update(ctx context.Context, id string, a Activity) (Activity, error)
	Delete(ctx context.Context, id string) error
}
