package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"leetcode_proxy/config"
	"leetcode_proxy/logger"
	"leetcode_proxy/metrics"
	"leetcode_proxy/models"
)

// 操作名，同时用作日志字段和指标标签
const (
	OpProfile  = "profile"
	OpStats    = "stats"
	OpSkills   = "skills"
	OpProblems = "problems"
)

// LeetCodeClient 向上游 GraphQL 端点发送固定查询并解开一层响应
type LeetCodeClient struct {
	endpoint     string
	defaultLimit int
	httpClient   *http.Client
	metrics      *metrics.Metrics
}

// NewLeetCodeClient 根据配置创建客户端，m 可以为 nil
func NewLeetCodeClient(cfg *config.Config, m *metrics.Metrics) *LeetCodeClient {
	return &LeetCodeClient{
		endpoint:     cfg.LeetCode.Endpoint,
		defaultLimit: cfg.LeetCode.DefaultLimit,
		httpClient:   &http.Client{Timeout: cfg.UpstreamTimeout()},
		metrics:      m,
	}
}

// DefaultLimit problems 查询的默认条数
func (c *LeetCodeClient) DefaultLimit() int {
	return c.defaultLimit
}

// GetProfile 返回 data.matchedUser
func (c *LeetCodeClient) GetProfile(ctx context.Context, username string) (json.RawMessage, error) {
	return c.fetch(ctx, OpProfile, profileQuery, username, nil, "matchedUser")
}

// GetStats 返回 data（allQuestionsCount + matchedUser）
func (c *LeetCodeClient) GetStats(ctx context.Context, username string) (json.RawMessage, error) {
	return c.fetch(ctx, OpStats, statsQuery, username, nil, "")
}

// GetSkills 返回 data（matchedUser.tagProblemCounts）
func (c *LeetCodeClient) GetSkills(ctx context.Context, username string) (json.RawMessage, error) {
	return c.fetch(ctx, OpSkills, skillsQuery, username, nil, "")
}

// GetRecentProblems 返回 data.recentAcSubmissionList，limit<=0 时使用默认值
func (c *LeetCodeClient) GetRecentProblems(ctx context.Context, username string, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = c.defaultLimit
	}
	return c.fetch(ctx, OpProblems, recentProblemsQuery, username, map[string]any{"limit": limit}, "recentAcSubmissionList")
}

// ParseLimit 宽松解析 limit：只接受十进制数字，无法解析或非正数时回退到默认值，从不报错
func ParseLimit(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return def
	}
	// cast 按前缀推断进制，去掉前导零后 "010" 才会按十进制解析
	n, err := cast.ToIntE(strings.TrimLeft(raw, "0"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (c *LeetCodeClient) fetch(ctx context.Context, op, query, username string, extra map[string]any, field string) (json.RawMessage, error) {
	if strings.TrimSpace(username) == "" {
		c.metrics.ObserveUpstream(op, metrics.OutcomeInvalid, 0)
		return nil, errMissing("username")
	}

	variables := map[string]any{"username": username}
	for k, v := range extra {
		variables[k] = v
	}

	start := time.Now()
	data, err := c.do(ctx, op, models.GraphQLRequest{Query: query, Variables: variables})
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.ObserveUpstream(op, outcomeOf(err), elapsed)
		return nil, err
	}
	c.metrics.ObserveUpstream(op, metrics.OutcomeSuccess, elapsed)

	if field == "" {
		return data, nil
	}
	return pluck(op, data, field)
}

// do 发送请求并返回响应信封中的 data
func (c *LeetCodeClient) do(ctx context.Context, op string, payload models.GraphQLRequest) (json.RawMessage, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, errTransport(op, errors.Wrap(err, "encode request"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, errTransport(op, errors.Wrap(err, "build request"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Debug("发送上游GraphQL请求", "operation", op, "endpoint", c.endpoint, "variables", payload.Variables)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errTransport(op, errors.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errTransport(op, errors.Wrap(err, "read response"))
	}

	// 检查HTTP状态码
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("上游返回错误状态码", "operation", op, "status_code", resp.StatusCode, "response", truncate(body, 512))
		return nil, errUpstream(op, resp.StatusCode)
	}

	var envelope models.GraphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errTransport(op, errors.Wrap(err, "decode response"))
	}
	if len(envelope.Errors) > 0 {
		logger.Warn("上游GraphQL返回错误信息", "operation", op, "errors", envelope.Errors)
	}
	if isNull(envelope.Data) {
		return nil, errTransport(op, errors.New("response has no data"))
	}
	return envelope.Data, nil
}

// pluck 从 data 中取出一个字段，字段缺失时返回 null
func pluck(op string, data json.RawMessage, field string) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errTransport(op, errors.Wrap(err, "decode data"))
	}
	v, ok := fields[field]
	if !ok {
		return json.RawMessage("null"), nil
	}
	return v, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func outcomeOf(err error) string {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return metrics.OutcomeUpstream
	}
	return metrics.OutcomeTransport
}
