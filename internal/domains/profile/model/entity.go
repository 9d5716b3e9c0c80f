package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors a user record owned by the external identity
// provider. This service never creates profiles, it only reads them
// for authorization and display.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	Role        string    `json:"role"`
	Bio         *string   `json:"bio"`
	Website     *string   `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileSummary is the subset attached to enriched listings.
type ProfileSummary struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
}
