package repo

import (
	"context"
	"testing"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/Uchencho/Bar-Zubi/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

var accountColumns = []string{
	"id", "username", "email", "phone_number", "password_hash",
	"is_active", "is_superuser", "created_at", "updated_at",
}

func TestAccountRepo_Create_OK_and_Duplicate(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewAccountRepo(mock, time.Second)
	ctx := context.Background()
	now := time.Now()

	acc := &models.Account{
		Username:     "bob",
		Email:        "b@x.com",
		PasswordHash: "hash",
		IsActive:     true,
	}

	mock.ExpectQuery(`INSERT INTO accounts \(username, email, phone_number, password_hash, is_active, is_superuser\)`).
		WithArgs(acc.Username, acc.Email, acc.PhoneNumber, acc.PasswordHash, acc.IsActive, acc.IsSuperuser).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))
	require.NoError(t, r.Create(ctx, acc))
	require.Equal(t, int64(1), acc.ID)

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(acc.Username, acc.Email, acc.PhoneNumber, acc.PasswordHash, acc.IsActive, acc.IsSuperuser).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, acc)
	require.ErrorIs(t, err, errs.ErrDuplicateAccount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByUsername(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewAccountRepo(mock, time.Second)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, email, phone_number, password_hash, is_active, is_superuser, created_at, updated_at FROM accounts WHERE username = \$1`).
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows(accountColumns).
			AddRow(int64(1), "bob", "b@x.com", nil, "hash", true, false, now, now))
	acc, err := r.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "bob", acc.Username)
	require.False(t, acc.IsSuperuser)

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_List(t *testing.T) {
	mock := newPool(t)
	defer mock.Close()
	r := NewAccountRepo(mock, time.Second)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM accounts ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(accountColumns).
			AddRow(int64(1), "bob", "b@x.com", nil, "hash", true, false, now, now).
			AddRow(int64(2), "alice", "a@x.com", nil, "hash2", true, true, now, now))

	accounts, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.Equal(t, "alice", accounts[1].Username)

	require.NoError(t, mock.ExpectationsWereMet())
}
