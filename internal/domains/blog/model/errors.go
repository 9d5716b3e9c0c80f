package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound    = "BLOG001"
	ErrCodeCommentNotFound = "BLOG002"
	ErrCodeInvalidInput    = "BLOG003"
)

// Errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

type BlogError struct {
	Code    string
	Message string
	Err     error
}

func (e *BlogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BlogError) Unwrap() error {
	return e.Err
}
