package job

import "context"

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	GetDetailByID(ctx context.Context, id string) (JobDetail, error)
	List(ctx context.Context) ([]JobDetail, error)
	ListByPartner(ctx context.Context, partnerCompany string) ([]Job, error)
	ListByIDs(ctx context.Context, ids []string) ([]Job, error)
	Update(ctx context.Context, req UpdateJobRequest) error
	Delete(ctx context.Context, id string) error
	ActiveSummary(ctx context.Context) (ActiveJobsSummary, error)
}
