package services

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError 必填参数缺失，对应 HTTP 400
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// UpstreamError 上游返回非 2xx 状态码
type UpstreamError struct {
	Operation  string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream returned HTTP %d", e.Operation, e.StatusCode)
}

// TransportError 网络失败或上游响应无法解析
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StorageError 数据库连接或查询失败
type StorageError struct {
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ConflictError 开启唯一性策略时用户名已存在
type ConflictError struct {
	Username string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("username %q already exists", e.Username)
}

// 以下构造函数统一附带调用栈

func errMissing(field string) error {
	return errors.WithStack(&ValidationError{Field: field})
}

func errUpstream(op string, status int) error {
	return errors.WithStack(&UpstreamError{Operation: op, StatusCode: status})
}

func errTransport(op string, err error) error {
	return errors.WithStack(&TransportError{Operation: op, Err: err})
}

func errStorage(op string, err error) error {
	return errors.WithStack(&StorageError{Operation: op, Err: err})
}

func errConflict(username string) error {
	return errors.WithStack(&ConflictError{Username: username})
}
