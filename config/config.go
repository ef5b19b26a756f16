package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every setting read from the environment.
type Config struct {
	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"portfolio"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/portfolio.db"`
	DBLogLevel string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	HTTPPort string `envconfig:"HTTP_PORT" default:"3000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SiteName    string `envconfig:"SITE_NAME" default:"Portfolio"`
	SiteURL     string `envconfig:"SITE_URL" default:"http://localhost:3000"`
	SiteLocale  string `envconfig:"SITE_LOCALE" default:"id"`
	ProfilePath string `envconfig:"PROFILE_PATH"`

	// AdminPath is the obscure path segment the dashboard lives under. It is not an
	// access control mechanism.
	AdminPath    string `envconfig:"ADMIN_PATH" default:"super-secret-admin"`
	APISecretKey string `envconfig:"API_SECRET_KEY"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"local"`
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"data/uploads"`
	UploadBaseURL string `envconfig:"UPLOAD_BASE_URL" default:"/uploads"`
	S3Key         string `envconfig:"S3_KEY"`
	S3Secret      string `envconfig:"S3_SECRET"`
	S3URL         string `envconfig:"S3_URL"`
	S3Region      string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Bucket      string `envconfig:"S3_BUCKET"`

	EuropePMCBaseURL string `envconfig:"EUROPEPMC_BASE_URL" default:"https://www.ebi.ac.uk/europepmc/webservices/rest"`
	UnpaywallBaseURL string `envconfig:"UNPAYWALL_BASE_URL" default:"https://api.unpaywall.org/v2"`
	UnpaywallEmail   string `envconfig:"UNPAYWALL_EMAIL"`
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Validate rejects combinations envconfig cannot express with struct tags.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.DBHost == "" || c.DBUser == "" {
			return errors.New("DB_HOST and DB_USER are required for the postgres driver")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.StorageDriver {
	case "local":
	case "s3":
		if c.S3Bucket == "" || c.S3URL == "" || c.S3Key == "" || c.S3Secret == "" {
			return errors.New("S3_URL, S3_BUCKET, S3_KEY and S3_SECRET are required for the s3 storage driver")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}

	if strings.Trim(c.AdminPath, "/") == "" {
		return errors.New("ADMIN_PATH must not be empty")
	}
	return nil
}

// AdminPrefix returns the dashboard route prefix, e.g. "/super-secret-admin".
func (c *Config) AdminPrefix() string {
	return "/" + strings.Trim(c.AdminPath, "/")
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
