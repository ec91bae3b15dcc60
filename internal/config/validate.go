package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.AccessSecret) < 32 {
		return fmt.Errorf("auth.access_secret must be at least 32 characters (got %d)", len(c.Auth.AccessSecret))
	}
	if len(c.Auth.RefreshSecret) < 32 {
		return fmt.Errorf("auth.refresh_secret must be at least 32 characters (got %d)", len(c.Auth.RefreshSecret))
	}
	if c.Auth.AccessSecret == c.Auth.RefreshSecret {
		return fmt.Errorf("auth.access_secret and auth.refresh_secret must differ")
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}
	if c.Auth.AccessTokenTTL >= c.Auth.RefreshTokenTTL {
		return fmt.Errorf("auth.access_token_ttl must be shorter than refresh_token_ttl")
	}

	if c.Uploads.MaxFiles <= 0 {
		return fmt.Errorf("uploads.max_files must be > 0 (got %d)", c.Uploads.MaxFiles)
	}

	if c.Export.MaxRecords <= 0 {
		return fmt.Errorf("export.max_records must be > 0 (got %d)", c.Export.MaxRecords)
	}

	return nil
}
