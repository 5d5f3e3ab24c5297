package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/auth"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureBootstrapSuperuser creates the configured superuser account on a
// fresh database so the admin capability is reachable without manual SQL.
// A blank password disables seeding. Idempotent across restarts.
func EnsureBootstrapSuperuser(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, username, password, email string) error {
	if password == "" {
		return nil
	}

	exists, err := accountExists(ctx, pool, timeout, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	ctxInsert, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	_, err = pool.Exec(ctxInsert, `
		INSERT INTO accounts (username, email, password_hash, is_active, is_superuser)
		VALUES ($1, $2, $3, TRUE, TRUE)
	`, username, email, hash)
	if err != nil {
		return fmt.Errorf("insert bootstrap superuser: %w", err)
	}
	return nil
}

func accountExists(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, username string) (bool, error) {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)", username)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check account exists: %w", err)
	}
	return exists, nil
}
