package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PRODUCTHUNT_TOKEN", "PH_TZ", "DATE", "TOP_N", "OUT_DIR", "README_PATH", "DB_PATH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Token != "" {
		t.Errorf("expected empty token, got %q", cfg.Token)
	}
	if cfg.Timezone != "Europe/Helsinki" {
		t.Errorf("unexpected default timezone: %q", cfg.Timezone)
	}
	if cfg.TopN != 10 {
		t.Errorf("unexpected default top N: %d", cfg.TopN)
	}
	if cfg.OutDir != "." {
		t.Errorf("unexpected default out dir: %q", cfg.OutDir)
	}
	if cfg.ReadmePath != "README.md" {
		t.Errorf("unexpected default readme path: %q", cfg.ReadmePath)
	}
	if cfg.DBPath != "producthunt.db" {
		t.Errorf("unexpected default db path: %q", cfg.DBPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRODUCTHUNT_TOKEN", "tok")
	t.Setenv("PH_TZ", "America/New_York")
	t.Setenv("DATE", "2024-03-05")
	t.Setenv("TOP_N", "5")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Token != "tok" || cfg.Timezone != "America/New_York" || cfg.DateOverride != "2024-03-05" || cfg.TopN != 5 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_BadTopNFallsBack(t *testing.T) {
	clearEnv(t)

	for _, v := range []string{"zero", "-3", "0"} {
		t.Setenv("TOP_N", v)
		cfg, err := Load(zerolog.Nop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TopN != 10 {
			t.Errorf("TOP_N=%q: expected fallback 10, got %d", v, cfg.TopN)
		}
	}
}
