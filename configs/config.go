package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverSheets   = "sheets"

	TokenModeOAuth  = "oauth"
	TokenModeManual = "manual"
)

type R2 struct {
	AccountID  string `env:"R2_ACCOUNT_ID"`
	AccessKey  string `env:"R2_ACCESS_KEY"`
	SecretKey  string `env:"R2_SECRET_KEY"`
	BucketName string `env:"R2_BUCKET_NAME"`
	PublicURL  string `env:"R2_PUBLIC_URL"`
}

// Enabled reports whether uploaded media should go to object storage.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

type Store struct {
	Driver      string `env:"STORE_DRIVER" env-default:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" env-default:"agentur_data.db"`
	PostgresURI string `env:"POSTGRES_URI"`
}

type Sheets struct {
	SpreadsheetID   string `env:"SHEETS_SPREADSHEET_ID"`
	CredentialsPath string `env:"SHEETS_CREDENTIALS_PATH" env-default:"google-credentials.json"`
	AccountsSheet   string `env:"SHEETS_ACCOUNTS_SHEET" env-default:"customers"`
	PostsSheet      string `env:"SHEETS_POSTS_SHEET" env-default:"posts"`
}

type Facebook struct {
	ClientID     string `env:"FACEBOOK_CLIENT_ID"`
	ClientSecret string `env:"FACEBOOK_CLIENT_SECRET"`
	RedirectURI  string `env:"FACEBOOK_REDIRECT_URI"`
}

type Config struct {
	Port        string `env:"PORT" env-default:"3000"`
	Env         string `env:"APP_ENV" env-default:"development"`
	SecretKey   string `env:"SECRET_KEY"`
	CookieName  string `env:"COOKIE_NAME" env-default:"agency_session"`
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	TokenMode   string `env:"TOKEN_MODE" env-default:"oauth"`
	WebhookURL  string `env:"AUTOMATION_WEBHOOK_URL"`
	RedisURI    string `env:"REDIS_URI"`
	SentryDSN   string `env:"SENTRY_DSN"`
	Store       Store
	Sheets      Sheets
	Facebook    Facebook
	R2          R2
}

// AutomationEnabled switches new posts to the Ready sentinel.
func (c *Config) AutomationEnabled() bool {
	return c.WebhookURL != ""
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}

	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite store"))
		}
	case DriverPostgres:
		if c.Store.PostgresURI == "" {
			errs = append(errs, errors.New("POSTGRES_URI is required for the postgres store"))
		}
	case DriverSheets:
		if c.Sheets.SpreadsheetID == "" {
			errs = append(errs, errors.New("SHEETS_SPREADSHEET_ID is required for the sheets store"))
		}
		if c.Sheets.CredentialsPath == "" {
			errs = append(errs, errors.New("SHEETS_CREDENTIALS_PATH is required for the sheets store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}

	switch c.TokenMode {
	case TokenModeOAuth:
		if c.Facebook.ClientID == "" {
			errs = append(errs, errors.New("FACEBOOK_CLIENT_ID is required in oauth mode"))
		}
		if c.Facebook.ClientSecret == "" {
			errs = append(errs, errors.New("FACEBOOK_CLIENT_SECRET is required in oauth mode"))
		}
		if c.Facebook.RedirectURI == "" {
			errs = append(errs, errors.New("FACEBOOK_REDIRECT_URI is required in oauth mode"))
		}
	case TokenModeManual:
	default:
		errs = append(errs, fmt.Errorf("unknown TOKEN_MODE %q", c.TokenMode))
	}

	// Ready posts are only delivered through the queue.
	if c.WebhookURL != "" && c.RedisURI == "" {
		errs = append(errs, errors.New("REDIS_URI is required when AUTOMATION_WEBHOOK_URL is set"))
	}

	return errors.Join(errs...)
}
