package services

import (
	"context"
	"strings"

	"leetcode_proxy/metrics"
	"leetcode_proxy/models"
)

const (
	OpListUsernames = "list"
	OpAddUsername   = "add"
)

// Registry 用户名注册表的业务层
type Registry struct {
	store   RegistryStore
	unique  bool
	metrics *metrics.Metrics
}

// NewRegistry unique 为 true 时拒绝重复用户名
func NewRegistry(store RegistryStore, unique bool, m *metrics.Metrics) *Registry {
	return &Registry{store: store, unique: unique, metrics: m}
}

// ListUsernames 返回注册表全部行
func (r *Registry) ListUsernames(ctx context.Context) ([]models.UsernameRecord, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		r.metrics.ObserveRegistry(OpListUsernames, metrics.OutcomeStorage)
		return nil, errStorage("list usernames", err)
	}
	r.metrics.ObserveRegistry(OpListUsernames, metrics.OutcomeSuccess)
	return records, nil
}

// AddUsername 校验并插入一个用户名，存储值与请求一致不做裁剪
func (r *Registry) AddUsername(ctx context.Context, username string) (*models.UsernameRecord, error) {
	if strings.TrimSpace(username) == "" {
		r.metrics.ObserveRegistry(OpAddUsername, metrics.OutcomeInvalid)
		return nil, errMissing("username")
	}

	if r.unique {
		exists, err := r.store.Exists(ctx, username)
		if err != nil {
			r.metrics.ObserveRegistry(OpAddUsername, metrics.OutcomeStorage)
			return nil, errStorage("check username", err)
		}
		if exists {
			r.metrics.ObserveRegistry(OpAddUsername, metrics.OutcomeConflict)
			return nil, errConflict(username)
		}
	}

	id, err := r.store.Insert(ctx, username)
	if err != nil {
		r.metrics.ObserveRegistry(OpAddUsername, metrics.OutcomeStorage)
		return nil, errStorage("add username", err)
	}
	r.metrics.ObserveRegistry(OpAddUsername, metrics.OutcomeSuccess)
	return &models.UsernameRecord{ID: id, Username: username}, nil
}

// Healthy 数据库是否可达
func (r *Registry) Healthy(ctx context.Context) bool {
	return r.store.Ping(ctx) == nil
}
