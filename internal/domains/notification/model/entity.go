package model

import (
	"time"

	"github.com/google/uuid"
)

// Preferences holds a user's email notification switches. Users who
// never saved preferences get the defaults.
type Preferences struct {
	UserID          uuid.UUID `json:"user_id"`
	EmailOnApproval bool      `json:"email_on_approval"`
	EmailOnReview   bool      `json:"email_on_review"`
	Newsletter      bool      `json:"newsletter"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultPreferences returns the switches a new user starts with.
func DefaultPreferences(userID uuid.UUID) *Preferences {
	return &Preferences{
		UserID:          userID,
		EmailOnApproval: true,
		EmailOnReview:   true,
		Newsletter:      false,
	}
}

type UpdatePreferencesRequest struct {
	EmailOnApproval bool `json:"email_on_approval"`
	EmailOnReview   bool `json:"email_on_review"`
	Newsletter      bool `json:"newsletter"`
}
