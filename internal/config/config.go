package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration, loaded from config.toml with
// secrets overridable from the environment.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	SMS      SMSConfig      `toml:"sms"`
	Geocoder GeocoderConfig `toml:"geocoder"`
	Blob     BlobConfig     `toml:"blob"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig carries the business rules the admission controller consults.
type BookingConfig struct {
	MinLeadHours  int    `toml:"min_lead_hours"`
	MaxDaysAhead  int    `toml:"max_days_ahead"`
	BusinessName  string `toml:"business_name"`
	BaseURL       string `toml:"base_url"`
	ContactNumber string `toml:"contact_number"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type SMSConfig struct {
	BaseURL    string `toml:"base_url"`
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
	Timeout    int    `toml:"timeout"`
}

type GeocoderConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

type BlobConfig struct {
	BaseURL       string `toml:"base_url"`
	Token         string `toml:"token"`
	MaxFileSizeMB int    `toml:"max_file_size_mb"`
	Timeout       int    `toml:"timeout"`
}

// secrets are environment overrides for values that must not live in the
// config file on disk.
type secrets struct {
	DBPassword     string `envconfig:"DB_PASSWORD"`
	AdminToken     string `envconfig:"ADMIN_TOKEN"`
	SMSAccountSID  string `envconfig:"SMS_ACCOUNT_SID"`
	SMSAuthToken   string `envconfig:"SMS_AUTH_TOKEN"`
	SMSFromNumber  string `envconfig:"SMS_FROM_NUMBER"`
	GeocoderAPIKey string `envconfig:"GEOCODER_API_KEY"`
	BlobToken      string `envconfig:"BLOB_TOKEN"`
}

// Load reads the TOML file at path and applies environment secret overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	var sec secrets
	if err := envconfig.Process("", &sec); err != nil {
		return nil, fmt.Errorf("config: failed to read environment overrides: %w", err)
	}
	applySecrets(cfg, sec)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Booking: BookingConfig{
			MinLeadHours: 24,
			MaxDaysAhead: 30,
			BusinessName: "TJ's Detailing Dynamics",
		},
		SMS:      SMSConfig{Timeout: 10},
		Geocoder: GeocoderConfig{BaseURL: "https://api.geoapify.com/v1/geocode", Timeout: 5},
		Blob:     BlobConfig{MaxFileSizeMB: 10, Timeout: 30},
	}
}

func applySecrets(cfg *Config, sec secrets) {
	if sec.DBPassword != "" {
		cfg.Database.Password = sec.DBPassword
	}
	if sec.AdminToken != "" {
		cfg.Admin.Token = sec.AdminToken
	}
	if sec.SMSAccountSID != "" {
		cfg.SMS.AccountSID = sec.SMSAccountSID
	}
	if sec.SMSAuthToken != "" {
		cfg.SMS.AuthToken = sec.SMSAuthToken
	}
	if sec.SMSFromNumber != "" {
		cfg.SMS.FromNumber = sec.SMSFromNumber
	}
	if sec.GeocoderAPIKey != "" {
		cfg.Geocoder.APIKey = sec.GeocoderAPIKey
	}
	if sec.BlobToken != "" {
		cfg.Blob.Token = sec.BlobToken
	}
}

func validate(cfg *Config) error {
	if cfg.Booking.MinLeadHours < 0 {
		return fmt.Errorf("config: booking.min_lead_hours must not be negative")
	}
	if cfg.Booking.MaxDaysAhead <= 0 {
		return fmt.Errorf("config: booking.max_days_ahead must be positive")
	}
	if cfg.Admin.Token == "" {
		return fmt.Errorf("config: admin.token is required (set ADMIN_TOKEN)")
	}
	return nil
}
