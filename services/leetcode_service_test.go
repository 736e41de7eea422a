package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetcode_proxy/config"
	"leetcode_proxy/metrics"
	"leetcode_proxy/models"
)

// fakeUpstream 记录收到的 GraphQL 请求并返回固定响应
type fakeUpstream struct {
	calls   atomic.Int32
	status  int
	body    string
	mu      sync.Mutex
	last    models.GraphQLRequest
	headers http.Header
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	var req models.GraphQLRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	f.last = req
	f.headers = r.Header.Clone()
	f.mu.Unlock()

	if f.status != 0 {
		w.WriteHeader(f.status)
	}
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeUpstream) lastRequest() (models.GraphQLRequest, http.Header) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, f.headers
}

func newTestClient(t *testing.T, up *fakeUpstream, m *metrics.Metrics) *LeetCodeClient {
	t.Helper()
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LeetCode.Endpoint = srv.URL
	cfg.LeetCode.DefaultLimit = config.DefaultLimit
	return NewLeetCodeClient(cfg, m)
}

func TestGetProfile_ReturnsMatchedUserOnly(t *testing.T) {
	up := &fakeUpstream{body: `{"data":{"matchedUser":{"username":"alice","profile":{"ranking":100}}}}`}
	client := newTestClient(t, up, nil)

	got, err := client.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","profile":{"ranking":100}}`, string(got))

	req, headers := up.lastRequest()
	assert.Equal(t, "alice", req.Variables["username"])
	assert.Contains(t, req.Query, "userPublicProfile")
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
}

func TestGetStatsAndSkills_ReturnWholeData(t *testing.T) {
	up := &fakeUpstream{body: `{"data":{"allQuestionsCount":[{"difficulty":"All","count":3000}],"matchedUser":{"submitStatsGlobal":null}}}`}
	client := newTestClient(t, up, nil)

	got, err := client.GetStats(context.Background(), "alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"allQuestionsCount":[{"difficulty":"All","count":3000}],"matchedUser":{"submitStatsGlobal":null}}`, string(got))
	req, _ := up.lastRequest()
	assert.Contains(t, req.Query, "userProblemsSolved")

	up.body = `{"data":{"matchedUser":{"tagProblemCounts":{"advanced":[],"intermediate":[],"fundamental":[]}}}}`
	got, err = client.GetSkills(context.Background(), "alice")
	require.NoError(t, err)
	assert.JSONEq(t, `{"matchedUser":{"tagProblemCounts":{"advanced":[],"intermediate":[],"fundamental":[]}}}`, string(got))
	req, _ = up.lastRequest()
	assert.Contains(t, req.Query, "skillStats")
}

func TestGetRecentProblems_LimitVariable(t *testing.T) {
	up := &fakeUpstream{body: `{"data":{"recentAcSubmissionList":[{"id":"1","title":"Two Sum","titleSlug":"two-sum","timestamp":"1700000000"}]}}`}
	client := newTestClient(t, up, nil)

	got, err := client.GetRecentProblems(context.Background(), "alice", 5)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","title":"Two Sum","titleSlug":"two-sum","timestamp":"1700000000"}]`, string(got))
	// JSON 数字解码为 float64
	req, _ := up.lastRequest()
	assert.Equal(t, float64(5), req.Variables["limit"])

	_, err = client.GetRecentProblems(context.Background(), "alice", 0)
	require.NoError(t, err)
	req, _ = up.lastRequest()
	assert.Equal(t, float64(20), req.Variables["limit"])
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 20},
		{"5", 5},
		{" 7 ", 7},
		{"abc", 20},
		{"0", 20},
		{"-3", 20},
		{"1.5x", 20},
		{"010", 10},
		{"08", 8},
		{"000", 20},
		{"0x10", 20},
		{"0b11", 20},
		{"1_0", 20},
		{"+5", 20},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLimit(tt.raw, 20))
		})
	}
}

func TestFetch_EmptyUsernameSkipsUpstream(t *testing.T) {
	up := &fakeUpstream{body: `{"data":{}}`}
	client := newTestClient(t, up, nil)

	_, err := client.GetProfile(context.Background(), "  ")
	require.Error(t, err)

	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
	assert.Equal(t, "username", validation.Field)
	assert.Equal(t, int32(0), up.calls.Load())
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	m := metrics.New()
	up := &fakeUpstream{status: http.StatusNotFound, body: `not found`}
	client := newTestClient(t, up, m)

	_, err := client.GetSkills(context.Background(), "alice")
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Equal(t, OpSkills, upstream.Operation)
	assert.Contains(t, fmt.Sprintf("%+v", err), "leetcode_service.go")

	n, err := testutil.GatherAndCount(m.Registry(), "leetcode_proxy_upstream_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFetch_TransportFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"data":`},
		{"missing data", `{"errors":[{"message":"boom"}]}`},
		{"null data", `{"data":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &fakeUpstream{body: tt.body}
			client := newTestClient(t, up, nil)

			_, err := client.GetStats(context.Background(), "alice")
			var transport *TransportError
			assert.True(t, errors.As(err, &transport))
		})
	}
}

func TestFetch_UnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	cfg := &config.Config{}
	cfg.LeetCode.Endpoint = endpoint
	cfg.LeetCode.DefaultLimit = config.DefaultLimit
	client := NewLeetCodeClient(cfg, nil)

	_, err := client.GetProfile(context.Background(), "alice")
	var transport *TransportError
	assert.True(t, errors.As(err, &transport))
}

func TestFetch_NullMatchedUserForwarded(t *testing.T) {
	up := &fakeUpstream{body: `{"data":{"matchedUser":null},"errors":[{"message":"That user does not exist.","path":["matchedUser"]}]}`}
	client := newTestClient(t, up, nil)

	got, err := client.GetProfile(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}
