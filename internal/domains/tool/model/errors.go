package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeToolNotFound  = "TOOL001"
	ErrCodeInvalidState  = "TOOL002"
	ErrCodeSlugTaken     = "TOOL003"
	ErrCodeInvalidInput  = "TOOL004"
)

// Errors
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrInvalidState = errors.New("operation not allowed in current status")
	ErrSlugTaken    = errors.New("slug already in use")
)

// ToolError custom error type
type ToolError struct {
	Code    string
	Message string
	Err     error
}

func (e *ToolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewToolNotFoundError() *ToolError {
	return &ToolError{
		Code:    ErrCodeToolNotFound,
		Message: "Tool not found",
		Err:     ErrToolNotFound,
	}
}

func NewInvalidStateError(current string) *ToolError {
	return &ToolError{
		Code:    ErrCodeInvalidState,
		Message: fmt.Sprintf("Operation not allowed while tool is %s", current),
		Err:     ErrInvalidState,
	}
}

func NewSlugTakenError() *ToolError {
	return &ToolError{
		Code:    ErrCodeSlugTaken,
		Message: "A tool with this name already exists",
		Err:     ErrSlugTaken,
	}
}
