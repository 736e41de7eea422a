package handlers

import (
	"encoding/json"
	"net/http"

	"leetcode_proxy/logger"
	"leetcode_proxy/models"
	"leetcode_proxy/services"
	"leetcode_proxy/utils"
)

// LeetCodeHandler 四个上游查询路由
type LeetCodeHandler struct {
	svc services.LeetCodeService
}

func NewLeetCodeHandler(svc services.LeetCodeService) *LeetCodeHandler {
	return &LeetCodeHandler{svc: svc}
}

// GetProfile godoc
// @Summary 获取用户公开资料
// @Description 查询 matchedUser 的个人资料、竞赛徽章和社交链接
// @Tags LeetCode
// @Produce json
// @Param username query string true "LeetCode 用户名"
// @Success 200 {object} models.MatchedUserProfile "matchedUser 对象"
// @Failure 400 {object} models.ErrorResponse "缺少 username"
// @Failure 500 {object} models.ErrorResponse "上游请求失败"
// @Router /leetcode/profile [get]
func (h *LeetCodeHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := queryUsername(r)
	if !utils.ValidateUsername(w, username) {
		return
	}
	data, err := h.svc.GetProfile(r.Context(), username)
	h.respond(w, services.OpProfile, username, data, err)
}

// GetStats godoc
// @Summary 获取做题统计
// @Description 全站题目数量以及该用户按难度的通过数和击败百分比
// @Tags LeetCode
// @Produce json
// @Param username query string true "LeetCode 用户名"
// @Success 200 {object} models.StatsResponse "allQuestionsCount + matchedUser"
// @Failure 400 {object} models.ErrorResponse "缺少 username"
// @Failure 500 {object} models.ErrorResponse "上游请求失败"
// @Router /leetcode/stats [get]
func (h *LeetCodeHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	username := queryUsername(r)
	if !utils.ValidateUsername(w, username) {
		return
	}
	data, err := h.svc.GetStats(r.Context(), username)
	h.respond(w, services.OpStats, username, data, err)
}

// GetSkills godoc
// @Summary 获取技能标签统计
// @Description 按 advanced / intermediate / fundamental 三档分组的标签解题数
// @Tags LeetCode
// @Produce json
// @Param username query string true "LeetCode 用户名"
// @Success 200 {object} models.SkillsResponse "matchedUser.tagProblemCounts"
// @Failure 400 {object} models.ErrorResponse "缺少 username"
// @Failure 500 {object} models.ErrorResponse "上游请求失败"
// @Router /leetcode/skills [get]
func (h *LeetCodeHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	username := queryUsername(r)
	if !utils.ValidateUsername(w, username) {
		return
	}
	data, err := h.svc.GetSkills(r.Context(), username)
	h.respond(w, services.OpSkills, username, data, err)
}

// GetRecentProblems godoc
// @Summary 获取最近通过的题目
// @Description limit 无法解析时回退到默认值 20
// @Tags LeetCode
// @Produce json
// @Param username query string true "LeetCode 用户名"
// @Param limit query int false "返回条数" default(20)
// @Success 200 {array} models.RecentSubmission "最近通过的提交"
// @Failure 400 {object} models.ErrorResponse "缺少 username"
// @Failure 500 {object} models.ErrorResponse "上游请求失败"
// @Router /leetcode/problems [get]
func (h *LeetCodeHandler) GetRecentProblems(w http.ResponseWriter, r *http.Request) {
	username := queryUsername(r)
	if !utils.ValidateUsername(w, username) {
		return
	}
	limit := services.ParseLimit(r.URL.Query().Get("limit"), h.svc.DefaultLimit())
	data, err := h.svc.GetRecentProblems(r.Context(), username, limit)
	h.respond(w, services.OpProblems, username, data, err)
}

func (h *LeetCodeHandler) respond(w http.ResponseWriter, op, username string, data json.RawMessage, err error) {
	if err == nil {
		utils.WriteSuccessResponse(w, data)
		return
	}

	status := utils.StatusFor(err)
	if status == http.StatusBadRequest {
		utils.WriteErrorResponse(w, status, models.MsgUsernameRequired)
		return
	}
	logger.ErrorStack("获取LeetCode数据失败", err, "operation", op, "username", username)
	utils.WriteErrorResponse(w, status, models.MsgFetchFailed)
}

// queryUsername 原样返回 username，空白校验由 utils.ValidateUsername 负责
func queryUsername(r *http.Request) string {
	return r.URL.Query().Get("username")
}
