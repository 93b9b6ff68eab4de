package entity

import "time"

// SiteSettings is the singleton record driving home-page, hall-hire and AGM
// display content. A missing record is served as built-in defaults.
type SiteSettings struct {
	HeroImage         string
	WelcomeImage      string
	HeroTitle         string
	HeroSubtitle      string
	WelcomeIntro      string
	WelcomeBody       string
	HallImages        []string // Gallery shown on the hall-hire page, up to six entries.
	AGMTitle          string
	AGMDate           string
	AGMTime           string
	AGMDescription    string
	AGMDocumentURL    string
	MembershipFormURL string
	UpdatedAt         time.Time
}

// DefaultSiteSettings returns the settings served before any admin has saved
// a record.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		HeroImage:    "https://images.unsplash.com/photo-1768333377265-cb6c3ca2885a",
		WelcomeImage: "https://images.unsplash.com/photo-1763733593826-d51c270cc8b4",
	}
}
