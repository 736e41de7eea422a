package repository

import (
	"context"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"leetcode_proxy/models"
)

// ErrStoreUnavailable 启动时未能建立数据库连接
var ErrStoreUnavailable = errors.New("registry store is unavailable")

const createTableSQL = `
CREATE TABLE IF NOT EXISTS leetcode_ids (
    id INT AUTO_INCREMENT PRIMARY KEY,
    username VARCHAR(255) NOT NULL
)`

// RegistryRepo 用户名注册表的 SQL 访问层
type RegistryRepo struct {
	db          *sqlx.DB
	autoMigrate bool
	migrated    atomic.Bool
}

// NewRegistryRepo conn 为 nil 时所有操作返回 ErrStoreUnavailable；
// autoMigrate 为 true 时，建表成功前每次操作都会先尝试建表
func NewRegistryRepo(conn *sqlx.DB, autoMigrate bool) *RegistryRepo {
	return &RegistryRepo{db: conn, autoMigrate: autoMigrate}
}

// EnsureSchema 表不存在时创建
func (r *RegistryRepo) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return errors.Wrap(err, "create table leetcode_ids")
	}
	r.migrated.Store(true)
	return nil
}

// ready 启动时数据库不可达的情况下，恢复后的第一次操作补建表
func (r *RegistryRepo) ready(ctx context.Context) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	if !r.autoMigrate || r.migrated.Load() {
		return nil
	}
	return r.EnsureSchema(ctx)
}

// List 按存储顺序返回所有行
func (r *RegistryRepo) List(ctx context.Context) ([]models.UsernameRecord, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	out := make([]models.UsernameRecord, 0)
	if err := r.db.SelectContext(ctx, &out, `SELECT id, username FROM leetcode_ids ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "select leetcode_ids")
	}
	return out, nil
}

// Insert 插入一行并返回自增 id
func (r *RegistryRepo) Insert(ctx context.Context, username string) (int64, error) {
	if err := r.ready(ctx); err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `INSERT INTO leetcode_ids (username) VALUES (?)`, username)
	if err != nil {
		return 0, errors.Wrap(err, "insert leetcode_ids")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "last insert id")
	}
	return id, nil
}

// Exists 执行 COUNT(1) 查询判断用户名是否已存在
func (r *RegistryRepo) Exists(ctx context.Context, username string) (bool, error) {
	if err := r.ready(ctx); err != nil {
		return false, err
	}
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leetcode_ids WHERE username = ?`, username); err != nil {
		return false, errors.Wrap(err, "count leetcode_ids")
	}
	return count > 0, nil
}

// Ping 检查数据库是否可达
func (r *RegistryRepo) Ping(ctx context.Context) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	return r.db.PingContext(ctx)
}

// Close 关闭连接池
func (r *RegistryRepo) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
