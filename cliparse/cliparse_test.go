package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3324 {
		t.Errorf("expected default port 3324, got %d", cfg.Port)
	}
	if cfg.StoreType != "file" {
		t.Errorf("expected default store type file, got %s", cfg.StoreType)
	}
	if cfg.DataFile != "pulseboard.json" {
		t.Errorf("expected default data file, got %s", cfg.DataFile)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORE_TYPE", "sqlite")
	os.Setenv("DATABASE_URL", "file:test.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != "sqlite" || cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected sqlite store from env, got %+v", cfg)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_SQLStoreRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-s", "postgres"}); err == nil {
		t.Error("expected error when postgres store has no database URL")
	}
}

func TestParseFlags_InvalidStoreType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-s", "redis"}); err == nil {
		t.Error("expected error for unknown store type")
	}
}
