package models

// DefaultStoreName is rendered when branding is unavailable or nameless
const DefaultStoreName = "Our Store"

// Branding is the store identity fetched fresh for every document
// generation. Any field may be empty; consumers degrade gracefully.
type Branding struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	Phone        string `json:"phone"`
	ContactEmail string `json:"contact_email"`
}
