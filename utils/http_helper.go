package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	"leetcode_proxy/models"
)

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	_ = encoder.Encode(data)
}

// WriteSuccessResponse 写入 200 响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, http.StatusOK, data)
}

// WriteErrorResponse 写入 {"error": message} 响应
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteFormattedJSON(w, status, models.NewErrorResponse(message))
}

// WritePlainText 写入纯文本响应
func WritePlainText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

// ValidateUsername 校验 username 参数，缺失或全为空白时写入 400
func ValidateUsername(w http.ResponseWriter, username string) bool {
	if strings.TrimSpace(username) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, models.MsgUsernameRequired)
		return false
	}
	return true
}
