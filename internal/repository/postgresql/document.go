package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/document"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `id, entity_type, entity_id, name, file_key, file_type, file_size, created_at`

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	err := row.Scan(
		&d.ID, &d.EntityType, &d.EntityID, &d.Name,
		&d.FileKey, &d.FileType, &d.FileSize, &d.CreatedAt,
	)
	return d, err
}

func (r *documentRepository) Create(ctx context.Context, d document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (id, entity_type, entity_id, name, file_key, file_type, file_size, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + documentColumns

	created, err := scanDocument(q.QueryRow(ctx, query,
		d.EntityType, d.EntityID, d.Name, d.FileKey, d.FileType, d.FileSize,
	))
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return created, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	d, err := scanDocument(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return d, nil
}

func (r *documentRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}

	return documents, rows.Err()
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}
