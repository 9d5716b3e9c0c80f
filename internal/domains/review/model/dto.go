package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateReviewRequest struct {
	ToolID  string  `json:"tool_id"`
	Rating  int     `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
	Pros    *string `json:"pros"`
	Cons    *string `json:"cons"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ToolID, validation.Required, is.UUIDv4),
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.Comment, validation.Length(0, 5000)),
		validation.Field(&r.Pros, validation.Length(0, 2000)),
		validation.Field(&r.Cons, validation.Length(0, 2000)),
	)
}

type AdminListReviewsQuery struct {
	Status string
	ToolID string
	Page   int
	Limit  int
}
