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

// AccountRepo implements the account directory on PostgreSQL.
type AccountRepo struct {
	pool    PgxPool
	timeout time.Duration
}

func NewAccountRepo(pool PgxPool, timeout time.Duration) *AccountRepo {
	return &AccountRepo{pool: pool, timeout: timeout}
}

// Create inserts a new account. A unique violation on username or email
// maps to errs.ErrDuplicateAccount.
func (r *AccountRepo) Create(ctx context.Context, acc *models.Account) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (username, email, phone_number, password_hash, is_active, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, acc.Username, acc.Email, acc.PhoneNumber, acc.PasswordHash, acc.IsActive, acc.IsSuperuser)

	if err := row.Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicateAccount
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByUsername loads an account by its username.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, phone_number, password_hash, is_active, is_superuser, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`, username)

	var acc models.Account
	if err := row.Scan(
		&acc.ID,
		&acc.Username,
		&acc.Email,
		&acc.PhoneNumber,
		&acc.PasswordHash,
		&acc.IsActive,
		&acc.IsSuperuser,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("get account by username: %w", err)
	}
	return &acc, nil
}

// List returns all accounts ordered by creation.
func (r *AccountRepo) List(ctx context.Context) ([]models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, username, email, phone_number, password_hash, is_active, is_superuser, created_at, updated_at
		FROM accounts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(
			&acc.ID,
			&acc.Username,
			&acc.Email,
			&acc.PhoneNumber,
			&acc.PasswordHash,
			&acc.IsActive,
			&acc.IsSuperuser,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}
