package pledge

// apiOrganization represents a single organization from the Pledge API.
type apiOrganization struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MissionStatement string `json:"mission_statement"`
	LogoURL          string `json:"logo_url"`
	WebsiteURL       string `json:"website_url"`
	NTEECode         string `json:"ntee_code"`
}
