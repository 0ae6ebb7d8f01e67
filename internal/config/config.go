package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEndpointDomain = "r2.cloudflarestorage.com"

type Config struct {
	AccountID      string
	AccessKeyID    string
	SecretKey      string
	Bucket         string
	Prefix         string
	EndpointDomain string
	Extensions     []string
	Patterns       []string
	DryRun         bool
}

// Load reads configuration from the environment, optionally seeded from a
// .env file first. A missing env file is only an error when the operator
// asked for one explicitly.
func Load(envFile string, explicit bool) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
			}
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("R2_ENDPOINT_DOMAIN", defaultEndpointDomain)
	for _, key := range []string{
		"R2_ACCOUNT_ID",
		"R2_ACCESS_KEY_ID",
		"R2_SECRET_ACCESS_KEY",
		"R2_BUCKET",
		"R2_PREFIX",
		"R2_ENDPOINT_DOMAIN",
		"DELETE_EXTENSIONS",
		"DELETE_PATTERNS",
		"DELETE_DRY_RUN",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		AccountID:      v.GetString("R2_ACCOUNT_ID"),
		AccessKeyID:    v.GetString("R2_ACCESS_KEY_ID"),
		SecretKey:      v.GetString("R2_SECRET_ACCESS_KEY"),
		Bucket:         v.GetString("R2_BUCKET"),
		Prefix:         v.GetString("R2_PREFIX"),
		EndpointDomain: v.GetString("R2_ENDPOINT_DOMAIN"),
		Extensions:     SplitList(v.GetString("DELETE_EXTENSIONS")),
		Patterns:       SplitList(v.GetString("DELETE_PATTERNS")),
		DryRun:         v.GetBool("DELETE_DRY_RUN"),
	}

	return cfg, nil
}

// SplitList parses a comma-separated token list, trimming whitespace and
// dropping empty entries.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
