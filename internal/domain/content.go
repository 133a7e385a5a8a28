package domain

// Service is a chauffeur offering from the service collection.
type Service struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Image     string   `json:"image" yaml:"image"`
	ShortDesc string   `json:"short_desc" yaml:"short_desc"`
	FullDesc  string   `json:"full_desc" yaml:"full_desc"`
	Features  []string `json:"features" yaml:"features"`
}

// FAQ is a guest information entry.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Partner is a category of agency the partnership program targets.
type Partner struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// PartnerStep is one stage of partner onboarding.
type PartnerStep struct {
	Step        int    `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// CareerOpening is an open role.
type CareerOpening struct {
	Title      string `json:"title" yaml:"title"`
	ApplyEmail string `json:"apply_email" yaml:"apply_email"`
}

// SupportChannel is a way to reach the concierge bureau.
type SupportChannel struct {
	Kind     string `json:"kind" yaml:"kind"`
	Title    string `json:"title" yaml:"title"`
	Detail   string `json:"detail" yaml:"detail"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Link     string `json:"link,omitempty" yaml:"link,omitempty"`
}

// LegalKind names a legal document.
type LegalKind string

const (
	LegalPrivacy LegalKind = "privacy"
	LegalTerms   LegalKind = "terms"
	LegalCookies LegalKind = "cookies"
)

// LegalSection is a headed paragraph of a legal document.
type LegalSection struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string `json:"body" yaml:"body"`
}

// LegalDocument is the privacy, terms or cookie policy text.
type LegalDocument struct {
	Kind     LegalKind      `json:"kind" yaml:"kind"`
	Title    string         `json:"title" yaml:"title"`
	Sections []LegalSection `json:"sections" yaml:"sections"`
}
