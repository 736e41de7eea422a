package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetcode_proxy/models"
)

var errLost = errors.New("connection lost")

func newMockRepo(t *testing.T) (*RegistryRepo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewRegistryRepo(sqlx.NewDb(conn, "mysql"), false), mock
}

func TestRegistryRepo_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username FROM leetcode_ids ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(1, "alice").
			AddRow(2, "bob"))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.UsernameRecord{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_ListEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username FROM leetcode_ids`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRegistryRepo_Insert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO leetcode_ids (username) VALUES (?)`)).
		WithArgs("bob").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Insert(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_InsertError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO leetcode_ids`)).
		WithArgs("bob").
		WillReturnError(errLost)

	_, err := repo.Insert(context.Background(), "bob")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errLost))
	assert.Contains(t, err.Error(), "insert leetcode_ids")
}

func TestRegistryRepo_Exists(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(1) FROM leetcode_ids WHERE username = ?`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	ok, err := repo.Exists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_EnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS leetcode_ids`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_Unavailable(t *testing.T) {
	repo := NewRegistryRepo(nil, true)
	ctx := context.Background()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = repo.Insert(ctx, "bob")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = repo.Exists(ctx, "bob")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Ping(ctx), ErrStoreUnavailable)
	assert.ErrorIs(t, repo.EnsureSchema(ctx), ErrStoreUnavailable)
	assert.NoError(t, repo.Close())
}

func TestRegistryRepo_AutoMigrateAfterOutage(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	repo := NewRegistryRepo(sqlx.NewDb(conn, "mysql"), true)
	ctx := context.Background()

	// 启动时建表失败
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS leetcode_ids`)).
		WillReturnError(errLost)
	require.Error(t, repo.EnsureSchema(ctx))

	// 恢复后第一次操作先补建表
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS leetcode_ids`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO leetcode_ids (username) VALUES (?)`)).
		WithArgs("bob").
		WillReturnResult(sqlmock.NewResult(1, 1))
	id, err := repo.Insert(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// 之后不再重复建表
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username FROM leetcode_ids ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "bob"))
	rows, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.UsernameRecord{{ID: 1, Username: "bob"}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistryRepo_AutoMigrateFailureSurfaces(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	repo := NewRegistryRepo(sqlx.NewDb(conn, "mysql"), true)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS leetcode_ids`)).
		WillReturnError(errLost)

	_, err = repo.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errLost))
	assert.NoError(t, mock.ExpectationsWereMet())
}
