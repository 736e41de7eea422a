package handlers

import (
	"encoding/json"
	"net/http"

	"leetcode_proxy/logger"
	"leetcode_proxy/models"
	"leetcode_proxy/services"
	"leetcode_proxy/utils"
)

const maxBodyBytes = 1 << 20

// 注册表路由返回纯文本
const (
	textUserAdded     = "User added successfully"
	textListFailed    = "Error fetching usernames"
	textAddFailed     = "Error adding user"
	textMissingUser   = models.MsgUsernameRequired
	textUsernameTaken = models.MsgUsernameExists
)

// RegistryHandler 本地用户名注册表路由
type RegistryHandler struct {
	registry services.UserRegistry
}

func NewRegistryHandler(registry services.UserRegistry) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// ListIDs godoc
// @Summary 列出已登记的用户名
// @Tags 注册表
// @Produce json
// @Success 200 {array} models.UsernameRecord "注册表全部行"
// @Failure 500 {string} string "数据库错误"
// @Router /leetcode/ids [get]
func (h *RegistryHandler) ListIDs(w http.ResponseWriter, r *http.Request) {
	records, err := h.registry.ListUsernames(r.Context())
	if err != nil {
		logger.ErrorStack("查询用户名列表失败", err)
		utils.WritePlainText(w, http.StatusInternalServerError, textListFailed)
		return
	}
	utils.WriteSuccessResponse(w, records)
}

// AddUser godoc
// @Summary 登记一个用户名
// @Tags 注册表
// @Accept json
// @Produce plain
// @Param body body models.AddUserRequest true "用户名"
// @Success 200 {string} string "登记成功"
// @Failure 400 {string} string "缺少 username"
// @Failure 409 {string} string "用户名已存在（仅在开启唯一性策略时）"
// @Failure 500 {string} string "数据库错误"
// @Router /add-user [post]
func (h *RegistryHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req models.AddUserRequest
	// 请求体无法解析时按缺少 username 处理
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.Debug("解析add-user请求体失败", "error", err)
	}

	record, err := h.registry.AddUsername(r.Context(), req.Username)
	if err != nil {
		switch utils.StatusFor(err) {
		case http.StatusBadRequest:
			utils.WritePlainText(w, http.StatusBadRequest, textMissingUser)
		case http.StatusConflict:
			logger.Warn("用户名已存在", "username", req.Username)
			utils.WritePlainText(w, http.StatusConflict, textUsernameTaken)
		default:
			logger.ErrorStack("登记用户名失败", err, "username", req.Username)
			utils.WritePlainText(w, http.StatusInternalServerError, textAddFailed)
		}
		return
	}

	logger.Info("用户名登记成功", "id", record.ID, "username", record.Username)
	utils.WritePlainText(w, http.StatusOK, textUserAdded)
}

// Health godoc
// @Summary 健康检查
// @Description 进程存活即返回 200，database 字段反映注册表数据库是否可达
// @Tags 系统
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /healthz [get]
func (h *RegistryHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{Status: "ok", Database: "up"}
	if !h.registry.Healthy(r.Context()) {
		resp.Database = "down"
	}
	utils.WriteSuccessResponse(w, resp)
}
