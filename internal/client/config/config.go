package config

import "time"

// Config holds runtime settings for the planting CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend (e.g. "http://127.0.0.1:8081").
//   - Username, Password: fixed session credentials for the password grant.
//   - RequestTimeout: client-side deadline for each backend request.
//   - ExportDir: directory for locally written report files.
//   - S3Bucket, S3Prefix: when S3Bucket is set, reports go to S3 instead.
type Config struct {
	APIBaseURL     string
	Username       string
	Password       string
	RequestTimeout time.Duration
	ExportDir      string
	S3Bucket       string
	S3Prefix       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8081"
	c.Username = "testuser@test.com"
	c.Password = "devpassword"
	c.RequestTimeout = 15 * time.Second
	c.ExportDir = "reports"
	c.S3Prefix = "reports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
