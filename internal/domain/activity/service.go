package activity

import "context"

type ActivityService interface {
	Create(ctx context.Context, req CreateActivityRequest) (Activity, error)
	ListByParent(ctx context.Context, parentType, parentID string) ([]Activity, error)
	ListRecent(ctx context.Context) ([]Activity, error)
	ListOverdue(ctx context.Context) ([]Activity, error)
	ListUpcoming(ctx context.Context) ([]Activity, error)
	Update(ctx context.Context, id string, req UpdateActivityRequest) (Activity, error)
	Delete(ctx context.Context, id string) error
}
