package errors

import "fmt"

// Error codes
const (
	CodePipeline = "PIPELINE_ERROR"
	CodeNotFound = "DATASET_NOT_FOUND"
	CodeLoad     = "DATASET_LOAD_ERROR"
	CodeAPI      = "API_ERROR"
	CodeConfig   = "CONFIG_ERROR"
)

type PipelineError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

func NewPipelineError(message, code string, context map[string]any) *PipelineError {
	return &PipelineError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *PipelineError) WithCause(cause error) *PipelineError {
	e.Cause = cause
	return e
}

// NotFoundError marks a dataset path that does not exist on disk.
type NotFoundError struct {
	*PipelineError
	Path string
}

func NewNotFoundError(path string) *NotFoundError {
	return &NotFoundError{
		PipelineError: &PipelineError{
			Message: fmt.Sprintf("dataset file not found: %s", path),
			Code:    CodeNotFound,
			Context: map[string]any{
				"path": path,
			},
		},
		Path: path,
	}
}

// LoadError marks a dataset stream that exists but cannot be read or has a
// broken structure (unreadable header, missing required column).
type LoadError struct {
	*PipelineError
}

func NewLoadError(message string, cause error, context map[string]any) *LoadError {
	return &LoadError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeLoad,
			Context: context,
			Cause:   cause,
		},
	}
}

type APIError struct {
	*PipelineError
	StatusCode int
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeAPI,
			Context: context,
		},
		StatusCode: statusCode,
	}
}

type ConfigError struct {
	*PipelineError
}

func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		PipelineError: &PipelineError{
			Message: message,
			Code:    CodeConfig,
			Cause:   cause,
		},
	}
}
