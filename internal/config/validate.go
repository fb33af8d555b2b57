package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Donation.validate(); err != nil {
		return fmt.Errorf("donation: %w", err)
	}

	if c.Directory.BaseURL == "" {
		return fmt.Errorf("directory.base_url must not be empty")
	}

	return nil
}

func (d *DonationConfig) validate() error {
	if d.MaxActivePreferences <= 0 {
		return fmt.Errorf("max_active_preferences must be > 0 (got %d)", d.MaxActivePreferences)
	}
	if d.MaxAutoDonationPercentage <= 0 || d.MaxAutoDonationPercentage > 100 {
		return fmt.Errorf("max_auto_donation_percentage must be in (0, 100] (got %v)", d.MaxAutoDonationPercentage)
	}
	if d.DefaultCashbackRate < 0 {
		return fmt.Errorf("default_cashback_rate must be >= 0 (got %v)", d.DefaultCashbackRate)
	}
	if d.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be > 0 (got %d)", d.RecentLimit)
	}
	return nil
}
