package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/Uchencho/Bar-Zubi/internal/models"
	"github.com/jackc/pgx/v5"
)

// EnquiryRepo implements the enquiry store on PostgreSQL. Every read and
// write is scoped by username, so ownership is enforced by the query
// itself rather than a separate permission check.
type EnquiryRepo struct {
	pool    PgxPool
	timeout time.Duration
}

func NewEnquiryRepo(pool PgxPool, timeout time.Duration) *EnquiryRepo {
	return &EnquiryRepo{pool: pool, timeout: timeout}
}

// Create inserts an enquiry owned by username.
func (r *EnquiryRepo) Create(ctx context.Context, username, question string) (*models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO enquiries (username, question)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, username, question)

	enq := models.Enquiry{Username: username, Question: question}
	if err := row.Scan(&enq.ID, &enq.CreatedAt, &enq.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert enquiry: %w", err)
	}
	return &enq, nil
}

// ListByUsername returns the enquiries owned by username, newest first.
func (r *EnquiryRepo) ListByUsername(ctx context.Context, username string) ([]models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, username, question, created_at, updated_at
		FROM enquiries
		WHERE username = $1
		ORDER BY id DESC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []models.Enquiry
	for rows.Next() {
		var enq models.Enquiry
		if err := rows.Scan(&enq.ID, &enq.Username, &enq.Question, &enq.CreatedAt, &enq.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		enquiries = append(enquiries, enq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enquiries: %w", err)
	}
	return enquiries, nil
}

// Get returns the enquiry with id owned by username, or errs.ErrNotFound.
// An enquiry owned by someone else is indistinguishable from a missing one.
func (r *EnquiryRepo) Get(ctx context.Context, username string, id int64) (*models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, question, created_at, updated_at
		FROM enquiries
		WHERE id = $1 AND username = $2
	`, id, username)

	var enq models.Enquiry
	if err := row.Scan(&enq.ID, &enq.Username, &enq.Question, &enq.CreatedAt, &enq.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("get enquiry: %w", err)
	}
	return &enq, nil
}

// Update replaces the question of an owned enquiry.
func (r *EnquiryRepo) Update(ctx context.Context, username string, id int64, question string) (*models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE enquiries
		SET question = $3, updated_at = NOW()
		WHERE id = $1 AND username = $2
		RETURNING id, username, question, created_at, updated_at
	`, id, username, question)

	var enq models.Enquiry
	if err := row.Scan(&enq.ID, &enq.Username, &enq.Question, &enq.CreatedAt, &enq.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("update enquiry: %w", err)
	}
	return &enq, nil
}

// Delete removes an owned enquiry and reports whether a row was deleted.
func (r *EnquiryRepo) Delete(ctx context.Context, username string, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		DELETE FROM enquiries
		WHERE id = $1 AND username = $2
	`, id, username)
	if err != nil {
		return false, fmt.Errorf("delete enquiry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
