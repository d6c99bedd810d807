package errors

import (
	stderrors "errors"
	"fmt"
)

// Code 是后端在响应体 message 字段中返回的语义码
type Code string

// 传输层与客户端自身使用的码
const (
	CodeNetworkError    Code = "network_error"
	CodeInvalidResponse Code = "invalid_response"
	CodeLoginRequired   Code = "login_required"
	CodeValidation      Code = "validation_failed"
	CodeUnknown         Code = "unknown_error"
	CodeInternal        Code = "internal_error"
)

// 成功码
const (
	CodeLoginSuccess    Code = "login_success"
	CodeRegisterSuccess Code = "register_success"
)

// 认证相关
const (
	CodeEmailRequired          Code = "email_required"
	CodeInvalidEmailFormat     Code = "invalid_email_format"
	CodeInvalidEmailCharacter  Code = "invalid_email_character"
	CodeDuplicateEmail         Code = "duplicate_email"
	CodePasswordRequired       Code = "password_required"
	CodeInvalidPasswordFormat  Code = "invalid_password_format"
	CodePasswordCheckRequired  Code = "password_check_required"
	CodePasswordMismatch       Code = "password_mismatch"
	CodeNicknameRequired       Code = "nickname_required"
	CodeNicknameContainsSpace  Code = "nickname_contains_space"
	CodeNicknameTooLong        Code = "nickname_too_long"
	CodeDuplicateNickname      Code = "duplicate_nickname"
	CodeProfileImageURLMissing Code = "profile_image_url_required"
	CodeInvalidCredentials     Code = "invalid_credentials"
)

// 帖子相关
const (
	CodeTitleTooLong  Code = "title_too_long"
	CodeMissingFields Code = "missing_fields"
)

// AppError 定义应用错误结构；Message 是可以直接展示给用户的文本
type AppError struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装已有错误，保留其中的语义码和状态码
func Wrap(code Code, message string, err error) *AppError {
	appErr := &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
	var inner *AppError
	if stderrors.As(err, &inner) {
		appErr.Code = inner.Code
		appErr.Status = inner.Status
	}
	return appErr
}

// FromResult 根据失败的后端响应创建错误
func FromResult(status int, message string) *AppError {
	code := Code(message)
	if code == "" {
		code = CodeUnknown
	}
	return &AppError{
		Code:    code,
		Status:  status,
		Message: string(code),
	}
}

// CodeOf 获取错误码
func CodeOf(err error) Code {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// MessageOf 返回可展示的错误文本
func MessageOf(err error, fallback string) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// IsNetwork 判断是否为网络层失败
func IsNetwork(err error) bool {
	return CodeOf(err) == CodeNetworkError
}

// ValidationError 携带各字段的提示文本
type ValidationError struct {
	Fields map[Field]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[Field]string)}
}

// Set 同一字段只保留第一条提示
func (e *ValidationError) Set(field Field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %d 个字段校验失败", CodeValidation, len(e.Fields))
}

// AsValidation 判断是否为字段校验错误
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	ok := stderrors.As(err, &v)
	return v, ok
}
