package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/domain/certificate"
	"github.com/shivamvermasf/consultefy-hiring-backend/internal/pkg/database"
)

type certificateRepository struct {
	db *database.DB
}

func NewCertificateRepository(db *database.DB) certificate.CertificateRepository {
	return &certificateRepository{db: db}
}

const certificateColumns = `id, name, provider, created_at`

func scanCertificate(row pgx.Row) (certificate.Certificate, error) {
	var c certificate.Certificate
	err := row.Scan(&c.ID, &c.Name, &c.Provider, &c.CreatedAt)
	return c, err
}

func (r *certificateRepository) Create(ctx context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO certificates (id, name, provider, created_at)
		VALUES (uuidv7(), $1, $2, NOW())
		RETURNING ` + certificateColumns

	created, err := scanCertificate(q.QueryRow(ctx, query, c.Name, c.Provider))
	if err != nil {
		return certificate.Certificate{}, fmt.Errorf("failed to create certificate: %w", err)
	}

	return created, nil
}

func (r *certificateRepository) GetByID(ctx context.Context, id string) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE id = $1`

	c, err := scanCertificate(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return certificate.Certificate{}, certificate.ErrCertificateNotFound
		}
		return certificate.Certificate{}, fmt.Errorf("failed to get certificate: %w", err)
	}

	return c, nil
}

func (r *certificateRepository) List(ctx context.Context) ([]certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + certificateColumns + ` FROM certificates ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	var certificates []certificate.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, c)
	}

	return certificates, rows.Err()
}

func (r *certificateRepository) Update(ctx context.Context, id string, req certificate.UpdateCertificateRequest) (certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE certificates
		SET name = $2, provider = $3
		WHERE id = $1
		RETURNING ` + certificateColumns

	c, err := scanCertificate(q.QueryRow(ctx, query, id, req.Name, req.Provider))
	if err != nil {
		if err == pgx.ErrNoRows {
			return certificate.Certificate{}, certificate.ErrCertificateNotFound
		}
		return certificate.Certificate{}, fmt.Errorf("failed to update certificate: %w", err)
	}

	return c, nil
}

func (r *certificateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrCertificateNotFound
	}

	return nil
}

func (r *certificateRepository) ListHolders(ctx context.Context, certificateID string) ([]certificate.CertificateHolder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, c.email
		FROM candidates c
		JOIN candidate_certificates cc ON cc.candidate_id = c.id
		WHERE cc.certificate_id = $1
		ORDER BY c.name
	`

	rows, err := q.Query(ctx, query, certificateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificate holders: %w", err)
	}
	defer rows.Close()

	var holders []certificate.CertificateHolder
	for rows.Next() {
		var h certificate.CertificateHolder
		if err := rows.Scan(&h.ID, &h.Name, &h.Email); err != nil {
			return nil, fmt.Errorf("failed to scan certificate holder: %w", err)
		}
		holders = append(holders, h)
	}

	return holders, rows.Err()
}

func (r *certificateRepository) ListByCandidate(ctx context.Context, candidateID string) ([]certificate.Certificate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, c.provider, c.created_at
		FROM candidate_certificates cc
		JOIN certificates c ON c.id = cc.certificate_id
		WHERE cc.candidate_id = $1
		ORDER BY c.name
	`

	rows, err := q.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate certificates: %w", err)
	}
	defer rows.Close()

	var certificates []certificate.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, c)
	}

	return certificates, rows.Err()
}

func (r *certificateRepository) ReplaceForCandidate(ctx context.Context, candidateID string, certificateIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM candidate_certificates WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("failed to clear candidate certificates: %w", err)
	}

	if len(certificateIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO candidate_certificates (candidate_id, certificate_id)
		SELECT $1, unnest($2::uuid[])
	`
	if _, err := q.Exec(ctx, query, candidateID, certificateIDs); err != nil {
		return fmt.Errorf("failed to assign candidate certificates: %w", err)
	}

	return nil
}
