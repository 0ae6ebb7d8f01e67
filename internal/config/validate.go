package config

import (
	"errors"
	"fmt"
)

// ErrNoCriteria means neither extensions nor patterns were configured.
// Callers print ExampleCriteria alongside it.
var ErrNoCriteria = errors.New("no deletion criteria specified")

const ExampleCriteria = `Add to your .env file:
DELETE_EXTENSIONS=.DS_Store,.docx,.tmp
DELETE_PATTERNS=backup,temp,old

Or use both for combined filtering.`

// Validate checks the fields that must be present before any network call.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("R2_BUCKET is not set")
	}
	if c.AccountID == "" || c.AccessKeyID == "" || c.SecretKey == "" {
		return fmt.Errorf("missing required credentials (R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY)")
	}
	if len(c.Extensions) == 0 && len(c.Patterns) == 0 {
		return ErrNoCriteria
	}
	return nil
}
