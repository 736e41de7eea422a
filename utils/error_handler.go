package utils

import (
	"net/http"

	"github.com/pkg/errors"

	"leetcode_proxy/services"
)

// StatusFor 将服务层错误映射为 HTTP 状态码
func StatusFor(err error) int {
	var validation *services.ValidationError
	var conflict *services.ConflictError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		// UpstreamError / TransportError / StorageError 及未知错误
		return http.StatusInternalServerError
	}
}
