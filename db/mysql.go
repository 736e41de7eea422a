package db

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"leetcode_proxy/config"
)

// Open 使用配置初始化数据库连接池
//
// 返回的连接即使 Ping 失败也仍然有效：database/sql 会在后续请求时重新建连，
// 调用方据此决定是否以降级模式继续运行。
func Open(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DB.DSN == "" {
		return nil, errors.New("database DSN is empty")
	}

	conn, err := sqlx.Open("mysql", cfg.DB.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}

	// 从配置读取连接池参数，提供默认值保护
	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 20 // 默认最大连接数
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 5 // 默认最大空闲连接数
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60 // 默认连接最大生命周期（分钟）
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		return conn, errors.Wrap(err, "ping mysql")
	}
	return conn, nil
}
