package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port == "" {
		t.Errorf("expected default port")
	}
	if cfg.JSearch.BaseURL != "https://jsearch.p.rapidapi.com" {
		t.Errorf("JSearch.BaseURL = %q", cfg.JSearch.BaseURL)
	}
	if cfg.JSearch.Country != "ae" {
		t.Errorf("JSearch.Country = %q", cfg.JSearch.Country)
	}
	if cfg.Storage.MaxFileSize != 10485760 {
		t.Errorf("Storage.MaxFileSize = %d", cfg.Storage.MaxFileSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("JSEARCH_COUNTRY", "sa")

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q", cfg.Server.Port)
	}
	if cfg.Storage.MaxFileSize != 1024 {
		t.Errorf("Storage.MaxFileSize = %d", cfg.Storage.MaxFileSize)
	}
	if cfg.JSearch.Country != "sa" {
		t.Errorf("JSearch.Country = %q", cfg.JSearch.Country)
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db",
			Port:     "5433",
			User:     "app",
			Password: "secret",
			DBName:   "autoapply",
		},
	}

	want := "host=db port=5433 user=app password=secret dbname=autoapply sslmode=disable"
	if got := cfg.GetDatabaseDSN(); got != want {
		t.Errorf("GetDatabaseDSN = %q, want %q", got, want)
	}
}
