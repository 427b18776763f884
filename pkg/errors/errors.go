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

	// Setup errors: these abort the run before any mutation
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrConfigValid  ErrorCode = "CONFIG_INVALID"
	ErrInputMissing ErrorCode = "INPUT_DIR_MISSING"

	// Per-candidate errors: recovered locally, candidate counted as failed
	ErrEncode     ErrorCode = "ENCODE"
	ErrBackupMove ErrorCode = "BACKUP_MOVE"
	ErrRename     ErrorCode = "RENAME"

	// Persistence errors: logged, non-fatal
	ErrLockLoad  ErrorCode = "LOCK_LOAD"
	ErrLockSave  ErrorCode = "LOCK_SAVE"
	ErrGitignore ErrorCode = "GITIGNORE"

	// Discovery and rewrite errors
	ErrDiscovery ErrorCode = "DISCOVERY"
	ErrRewrite   ErrorCode = "REWRITE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// ShrinkwrapError represents a structured error with code and details
type ShrinkwrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShrinkwrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShrinkwrapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShrinkwrapError) Is(target error) bool {
	var targetErr *ShrinkwrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShrinkwrapError with the given code and message
func New(code ErrorCode, message string) *ShrinkwrapError {
	return &ShrinkwrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShrinkwrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShrinkwrapError {
	return &ShrinkwrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShrinkwrapError
func Wrap(err error, code ErrorCode, message string) *ShrinkwrapError {
	if err == nil {
		return nil
	}
	return &ShrinkwrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShrinkwrapError {
	if err == nil {
		return nil
	}
	return &ShrinkwrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShrinkwrapError) WithDetail(key string, value interface{}) *ShrinkwrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var swErr *ShrinkwrapError
	if errors.As(err, &swErr) {
		return swErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShrinkwrapError
func GetErrorCode(err error) ErrorCode {
	var swErr *ShrinkwrapError
	if errors.As(err, &swErr) {
		return swErr.Code
	}
	return ErrUnknown
}

// IsSetupError reports whether the error belongs to the fatal setup
// category. Only setup errors abort a run; everything else degrades to a
// logged diagnostic and a count in the run summary.
func IsSetupError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid, ErrInputMissing:
		return true
	}
	return false
}
