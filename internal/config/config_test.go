package config

import (
	"testing"

	"github.com/DataWraith/bbt"
)

func TestLoad_Defaults(t *testing.T) {
	// Blank out anything the host environment may carry.
	for _, key := range []string{"ENV", "LOG_LEVEL", "BBT_BETA", "BBT_MODEL", "SIM_PLAYERS", "SIM_TEAMS", "SIM_TEAM_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Beta != bbt.DefaultBeta {
		t.Errorf("Beta = %v, want %v", cfg.Beta, bbt.DefaultBeta)
	}
	if cfg.Model != "bradley-terry" {
		t.Errorf("Model = %q, want bradley-terry", cfg.Model)
	}
	if cfg.Players != 32 || cfg.Teams != 4 || cfg.TeamSize != 2 {
		t.Errorf("simulation shape = %d/%d/%d, want 32/4/2", cfg.Players, cfg.Teams, cfg.TeamSize)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BBT_BETA", "2.5")
	t.Setenv("BBT_MODEL", "thurstone-mosteller")
	t.Setenv("SIM_MATCHES", "100")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Beta != 2.5 {
		t.Errorf("Beta = %v, want 2.5", cfg.Beta)
	}
	if cfg.Model != "thurstone-mosteller" {
		t.Errorf("Model = %q, want thurstone-mosteller", cfg.Model)
	}
	if cfg.Matches != 100 {
		t.Errorf("Matches = %d, want 100", cfg.Matches)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("BBT_BETA", "not-a-number")
	t.Setenv("SIM_PLAYERS", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Beta != bbt.DefaultBeta {
		t.Errorf("Beta = %v, want default %v on bad input", cfg.Beta, bbt.DefaultBeta)
	}
	if cfg.Players != 32 {
		t.Errorf("Players = %d, want default 32 on bad input", cfg.Players)
	}
}
