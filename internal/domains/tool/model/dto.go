package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

type SubmitToolRequest struct {
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	WebsiteURL  string   `json:"website_url"`
	LogoURL     *string  `json:"logo_url"`
	Screenshots []string `json:"screenshots"`
	PricingType string   `json:"pricing_type"`
	ListingType string   `json:"listing_type"`
	CategoryIDs []string `json:"category_ids"`
}

func (r SubmitToolRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&r.Tagline, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Description, validation.Required, validation.Length(10, 10000)),
		validation.Field(&r.WebsiteURL, validation.Required, is.URL),
		validation.Field(&r.PricingType, validation.Required,
			validation.In(PricingFree, PricingFreemium, PricingPaid, PricingSubscription)),
		validation.Field(&r.ListingType, validation.Required,
			validation.In(ListingFree, ListingPaid)),
		validation.Field(&r.Screenshots, validation.Length(0, 10)),
	)
}

type ListToolsQuery struct {
	Category string
	Pricing  string
	Search   string
	Featured *bool
	Page     int
	Limit    int
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type FeatureToggleResponse struct {
	Success    bool `json:"success"`
	IsFeatured bool `json:"is_featured"`
}
