package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, d Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]Document, error)
	Delete(ctx context.Context, id string) error
}
