package folio

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/eringen/folio/views"
)

// SiteConfig holds all configuration for a folio site. Everything is loaded
// once at startup and never mutated afterward.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags
	Author      string // Owner name shown on the about page and footer

	Addr string // Listen address (default ":3000")

	SecretKey        string // Required: signing secret for tokens and sessions
	NotionAPIKey     string // Required: workspace API integration token
	NotionDatabaseID string // Required: portfolio database id
	NotionPageID     string // Required: root page id (supplies the page icon)
	SMTPAPIToken     string // Required: outbound mail relay API token

	MailHost     string // SMTP relay host (default "live.smtp.mailtrap.io")
	MailPort     int    // SMTP relay port (default 587)
	MailUsername string // SMTP relay username (default "api")

	NoReplyAddress string // Sender for verification emails
	ContactSender  string // Sender for admin notifications
	AdminAddress   string // Recipient of admin notifications

	CookieSecure bool          // Set true for HTTPS
	TokenMaxAge  time.Duration // Verification token lifetime (default 1h)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.MailHost == "" {
		c.MailHost = "live.smtp.mailtrap.io"
	}
	if c.MailPort == 0 {
		c.MailPort = 587
	}
	if c.MailUsername == "" {
		c.MailUsername = "api"
	}
	if c.NoReplyAddress == "" {
		c.NoReplyAddress = "noreply@localhost"
	}
	if c.ContactSender == "" {
		c.ContactSender = "portfolio@localhost"
	}
	if c.AdminAddress == "" {
		c.AdminAddress = "admin@localhost"
	}
	if c.TokenMaxAge == 0 {
		c.TokenMaxAge = time.Hour
	}
}

// Validate reports the first missing required setting. The process must not
// start without its credentials.
func (c *SiteConfig) Validate() error {
	required := []struct {
		name, value string
	}{
		{"SecretKey", c.SecretKey},
		{"NotionAPIKey", c.NotionAPIKey},
		{"NotionDatabaseID", c.NotionDatabaseID},
		{"NotionPageID", c.NotionPageID},
		{"SMTPAPIToken", c.SMTPAPIToken},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("folio: %s is required", r.name)
		}
	}
	return nil
}

// site converts the config into the subset the templates need.
func (c *SiteConfig) site() views.Site {
	return views.Site{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// ConfigFromEnv builds a SiteConfig from environment variables. Callers load
// a .env file first if they want one.
func ConfigFromEnv() SiteConfig {
	cfg := SiteConfig{
		Name:             EnvOr("SITE_NAME", ""),
		URL:              EnvOr("SITE_URL", ""),
		Description:      EnvOr("SITE_DESCRIPTION", ""),
		Author:           EnvOr("SITE_AUTHOR", ""),
		Addr:             EnvOr("LISTEN_ADDR", ""),
		SecretKey:        os.Getenv("SECRET_KEY"),
		NotionAPIKey:     os.Getenv("NOTION_API_KEY"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		NotionPageID:     os.Getenv("NOTION_PAGE_ID"),
		SMTPAPIToken:     os.Getenv("SMTP_API_TOKEN"),
		MailHost:         EnvOr("MAIL_HOST", ""),
		MailUsername:     EnvOr("MAIL_USERNAME", ""),
		NoReplyAddress:   EnvOr("MAIL_NOREPLY_ADDRESS", ""),
		ContactSender:    EnvOr("MAIL_CONTACT_SENDER", ""),
		AdminAddress:     EnvOr("MAIL_ADMIN_ADDRESS", ""),
		CookieSecure:     envBool("COOKIE_SECURE"),
	}
	if port := os.Getenv("MAIL_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.MailPort = n
		}
	}
	if age := os.Getenv("TOKEN_MAX_AGE"); age != "" {
		if d, err := time.ParseDuration(age); err == nil {
			cfg.TokenMaxAge = d
		}
	}
	cfg.setDefaults()
	return cfg
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
