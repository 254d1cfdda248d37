package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Digest  DigestConfig
	Notify  NotifyConfig
	Sheets  SheetsConfig
	MongoDB MongoDBConfig
	Alerts  AlertsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StorageConfig locates the flat-file record store.
type StorageConfig struct {
	DataDir string
}

// DigestConfig holds scheduler-related settings for the daily digest.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
}

// NotifyConfig holds the optional webhook the digest is pushed to.
type NotifyConfig struct {
	WebhookURL string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
// The sheets export is enabled only when all fields are populated.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	SheetRange      string
}

// Enabled reports whether the sheets export is configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// MongoDBConfig holds settings for the optional snapshot archive.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Enabled reports whether the snapshot archive is configured.
func (c MongoDBConfig) Enabled() bool {
	return c.URI != ""
}

// AlertsConfig overrides the default look-ahead windows, in days.
type AlertsConfig struct {
	AnimalHealthWindow int
	CropHarvestWindow  int
	CropSowingWindow   int
	TaskWindow         int
	EquipmentWindow    int
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Storage: StorageConfig{
			DataDir: getenvWithDefault("FARM_DATA_DIR", "data"),
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Africa/Abidjan"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
			SheetRange:      getenvWithDefault("GOOGLE_SHEET_DIGEST_RANGE", "Digests!A:J"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "ferme"),
		},
		Alerts: AlertsConfig{
			AnimalHealthWindow: getenvIntWithDefault("ALERT_ANIMAL_HEALTH_WINDOW_DAYS", 7),
			CropHarvestWindow:  getenvIntWithDefault("ALERT_CROP_HARVEST_WINDOW_DAYS", 14),
			CropSowingWindow:   getenvIntWithDefault("ALERT_CROP_SOWING_WINDOW_DAYS", 7),
			TaskWindow:         getenvIntWithDefault("ALERT_TASK_WINDOW_DAYS", 3),
			EquipmentWindow:    getenvIntWithDefault("ALERT_EQUIPMENT_WINDOW_DAYS", 30),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. The
// webhook, sheets and MongoDB integrations stay optional; only internally
// inconsistent settings are rejected.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Storage.DataDir == "" {
		return errors.New("FARM_DATA_DIR must be provided")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	if c.Digest.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided when sheets credentials are set")
	}
	if c.Sheets.SpreadsheetID != "" && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when a spreadsheet id is set")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	windows := map[string]int{
		"ALERT_ANIMAL_HEALTH_WINDOW_DAYS": c.Alerts.AnimalHealthWindow,
		"ALERT_CROP_HARVEST_WINDOW_DAYS":  c.Alerts.CropHarvestWindow,
		"ALERT_CROP_SOWING_WINDOW_DAYS":   c.Alerts.CropSowingWindow,
		"ALERT_TASK_WINDOW_DAYS":          c.Alerts.TaskWindow,
		"ALERT_EQUIPMENT_WINDOW_DAYS":     c.Alerts.EquipmentWindow,
	}
	for key, days := range windows {
		if days <= 0 {
			return fmt.Errorf("%s must be a positive number of days", key)
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvIntWithDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
