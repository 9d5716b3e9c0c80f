package model

// SiteSettings is the singleton row of public site metadata.
type SiteSettings struct {
	SiteName        string  `json:"site_name"`
	SiteDescription string  `json:"site_description"`
	LogoURL         *string `json:"logo_url"`
	TwitterURL      *string `json:"twitter_url"`
	GithubURL       *string `json:"github_url"`
	DiscordURL      *string `json:"discord_url"`
	ContactEmail    string  `json:"contact_email"`
}
