package model

// Tool status lifecycle. Valid transitions are pending->approved,
// pending->rejected, approved->archived. Archived is terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusArchived = "archived"
)

// Pricing models shown on the listing card.
const (
	PricingFree         = "free"
	PricingFreemium     = "freemium"
	PricingPaid         = "paid"
	PricingSubscription = "subscription"
)

// Listing tiers. Paid listings are featured automatically on approval.
const (
	ListingFree = "free"
	ListingPaid = "paid"
)

func ValidPricingType(s string) bool {
	switch s {
	case PricingFree, PricingFreemium, PricingPaid, PricingSubscription:
		return true
	}
	return false
}

func ValidListingType(s string) bool {
	return s == ListingFree || s == ListingPaid
}
