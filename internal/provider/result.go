package provider

// CharityResult is the structured result from a charity directory provider.
type CharityResult struct {
	ID       string
	Name     string
	Mission  *string
	LogoURL  *string
	Website  *string
	Category *string
}
