package services

import (
	"context"
	"encoding/json"

	"leetcode_proxy/models"
)

// LeetCodeService 上游查询网关接口
type LeetCodeService interface {
	GetProfile(ctx context.Context, username string) (json.RawMessage, error)
	GetStats(ctx context.Context, username string) (json.RawMessage, error)
	GetSkills(ctx context.Context, username string) (json.RawMessage, error)
	GetRecentProblems(ctx context.Context, username string, limit int) (json.RawMessage, error)

	// problems 查询的默认条数
	DefaultLimit() int
}

// UserRegistry 本地用户名注册表接口
type UserRegistry interface {
	ListUsernames(ctx context.Context) ([]models.UsernameRecord, error)
	AddUsername(ctx context.Context, username string) (*models.UsernameRecord, error)
	Healthy(ctx context.Context) bool
}

// RegistryStore 注册表存储层，由 repository.RegistryRepo 实现
type RegistryStore interface {
	List(ctx context.Context) ([]models.UsernameRecord, error)
	Insert(ctx context.Context, username string) (int64, error)
	Exists(ctx context.Context, username string) (bool, error)
	Ping(ctx context.Context) error
}

var (
	_ LeetCodeService = (*LeetCodeClient)(nil)
	_ UserRegistry    = (*Registry)(nil)
)
