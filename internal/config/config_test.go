package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.DataDir != "data" {
		t.Errorf("data dir = %q, want data", cfg.Storage.DataDir)
	}
	if cfg.Digest.CronSchedule != "0 20 * * *" {
		t.Errorf("cron schedule = %q", cfg.Digest.CronSchedule)
	}
	if cfg.Alerts.EquipmentWindow != 30 {
		t.Errorf("equipment window = %d, want 30", cfg.Alerts.EquipmentWindow)
	}
	if cfg.Sheets.Enabled() || cfg.MongoDB.Enabled() {
		t.Error("integrations enabled without configuration")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("FARM_DATA_DIR", "/var/lib/ferme")
	t.Setenv("ALERT_TASK_WINDOW_DAYS", "5")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load("does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Storage.DataDir != "/var/lib/ferme" {
		t.Errorf("data dir = %q", cfg.Storage.DataDir)
	}
	if cfg.Alerts.TaskWindow != 5 {
		t.Errorf("task window = %d, want 5", cfg.Alerts.TaskWindow)
	}
	if !cfg.MongoDB.Enabled() {
		t.Error("mongodb should be enabled when a URI is set")
	}
}

func TestLoad_UnparsableWindowFallsBack(t *testing.T) {
	t.Setenv("ALERT_TASK_WINDOW_DAYS", "soon")

	cfg, err := Load("does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Alerts.TaskWindow != 3 {
		t.Errorf("task window = %d, want default 3", cfg.Alerts.TaskWindow)
	}
}

func TestValidate_InconsistentSheets(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/tmp/creds.json")

	if _, err := Load("does-not-exist.env"); err == nil {
		t.Error("expected error for credentials without a spreadsheet id")
	}
}

func TestValidate_NegativeWindow(t *testing.T) {
	t.Setenv("ALERT_CROP_SOWING_WINDOW_DAYS", "-1")

	if _, err := Load("does-not-exist.env"); err == nil {
		t.Fatal("expected error for negative window")
	}
}
