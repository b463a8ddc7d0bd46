package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrTypeConfig marks a bad or missing input/output directory.
	// Fatal: the run aborts before any processing.
	ErrTypeConfig ErrorType = "CONFIG"
	// ErrTypeArchive marks an unreadable or truncated source archive.
	// Recovered: the archive is skipped and the batch continues.
	ErrTypeArchive ErrorType = "ARCHIVE"
	// ErrTypeParsing marks a tabular file that could not be read.
	// Recovered: the file is skipped and the batch continues.
	ErrTypeParsing ErrorType = "PARSING"
	// ErrTypeSchema marks a required column absent from a source.
	// Recovered: the neutral marker is substituted, never fatal.
	ErrTypeSchema ErrorType = "SCHEMA"
	// ErrTypeConsolidation marks a consolidation attempt with zero input
	// datasets. Fatal: an empty success would silently corrupt the
	// downstream reports.
	ErrTypeConsolidation ErrorType = "CONSOLIDATION"
	// ErrTypeStorage marks a failed output write.
	ErrTypeStorage ErrorType = "STORAGE"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// IsFatal reports whether err must terminate the run. Only directory
// misconfiguration and a wholly empty batch escalate; everything else is
// recovered locally.
func IsFatal(err error) bool {
	return IsType(err, ErrTypeConfig) || IsType(err, ErrTypeConsolidation)
}

// Helper functions for common error types

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewArchiveError creates a corrupt-archive error
func NewArchiveError(message string, cause error) *AppError {
	return NewAppError(ErrTypeArchive, message, cause)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewSchemaError creates a schema-mismatch error
func NewSchemaError(message string) *AppError {
	return NewAppError(ErrTypeSchema, message, nil)
}

// NewConsolidationError creates an empty-batch consolidation error
func NewConsolidationError(message string) *AppError {
	return NewAppError(ErrTypeConsolidation, message, nil)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}
