package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Repository errors
	ErrRepoNotFound ErrorCode = "REPO_NOT_FOUND"
	ErrRepoAccess   ErrorCode = "REPO_ACCESS"

	// Agent definition errors
	ErrAgentNotFound ErrorCode = "AGENT_NOT_FOUND"
	ErrAgentParse    ErrorCode = "AGENT_PARSE"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileRename    ErrorCode = "FILE_RENAME"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// Install errors
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"
)

// AgentlinkError represents a structured error with code and details
type AgentlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AgentlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AgentlinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AgentlinkError) Is(target error) bool {
	var targetErr *AgentlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AgentlinkError with the given code and message
func New(code ErrorCode, message string) *AgentlinkError {
	return &AgentlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AgentlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AgentlinkError {
	return &AgentlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AgentlinkError
func Wrap(err error, code ErrorCode, message string) *AgentlinkError {
	if err == nil {
		return nil
	}
	return &AgentlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AgentlinkError {
	if err == nil {
		return nil
	}
	return &AgentlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AgentlinkError) WithDetail(key string, value interface{}) *AgentlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var alErr *AgentlinkError
	if errors.As(err, &alErr) {
		return alErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AgentlinkError
func GetErrorCode(err error) ErrorCode {
	var alErr *AgentlinkError
	if errors.As(err, &alErr) {
		return alErr.Code
	}
	return ErrUnknown
}
