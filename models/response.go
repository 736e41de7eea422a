package models

// 客户端可见的错误消息，保持通用，不暴露内部细节
const (
	MsgUsernameRequired = "Username is required"
	MsgFetchFailed      = "Failed to fetch data"
	MsgUsernameExists   = "Username already exists"
)

// ErrorResponse 上游查询接口的错误响应体
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch data"`
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
