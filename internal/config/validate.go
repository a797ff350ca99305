package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Image.MaxBytes <= 0 {
		return fmt.Errorf("image.max_bytes must be > 0 (got %d)", c.Image.MaxBytes)
	}
	if c.Image.MaxWidth <= 0 || c.Image.MaxHeight <= 0 {
		return fmt.Errorf("image.max_width and image.max_height must be > 0")
	}

	if c.RateLimit.Requests < 0 {
		return fmt.Errorf("rate_limit.requests must be >= 0 (got %d)", c.RateLimit.Requests)
	}

	return nil
}

func (p *PaginationConfig) validate() error {
	if p.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", p.DefaultLimit)
	}
	if p.MaxLimit < p.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", p.MaxLimit, p.DefaultLimit)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch strings.ToLower(s.Driver) {
	case "local":
		if s.LocalDir == "" {
			return fmt.Errorf("local_dir is required for the local driver")
		}
	case "s3":
		if s.S3Bucket == "" {
			return fmt.Errorf("s3_bucket is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want local or s3)", s.Driver)
	}
	return nil
}
