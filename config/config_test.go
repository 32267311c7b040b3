package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:   "localhost",
			User:   "fanloft",
			DBName: "fanloft",
		},
		JWT: JWTConfig{Secret: "secret"},
		Ledger: LedgerConfig{
			CommissionBps:  500,
			MinPayoutMinor: 10000,
		},
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Ledger.CommissionBps != 500 {
		t.Errorf("commission = %d, want 500", cfg.Ledger.CommissionBps)
	}
	if cfg.Ledger.GraceDays != 30 {
		t.Errorf("grace days = %d, want 30", cfg.Ledger.GraceDays)
	}
	if cfg.Ledger.MinPayoutMinor != 10000 {
		t.Errorf("min payout = %d, want 10000", cfg.Ledger.MinPayoutMinor)
	}
	if cfg.Ledger.PayoutCooldownHours != 24 {
		t.Errorf("cooldown hours = %d, want 24", cfg.Ledger.PayoutCooldownHours)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("COMMISSION_BPS", "750")
	t.Setenv("MIN_PAYOUT_MINOR", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Ledger.CommissionBps != 750 {
		t.Errorf("commission = %d, want 750", cfg.Ledger.CommissionBps)
	}
	if cfg.Ledger.MinPayoutMinor != 5000 {
		t.Errorf("min payout = %d, want 5000", cfg.Ledger.MinPayoutMinor)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }, "JWT_SECRET"},
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "DATABASE_HOST"},
		{"commission over 100 percent", func(c *Config) { c.Ledger.CommissionBps = 10001 }, "COMMISSION_BPS"},
		{"negative commission", func(c *Config) { c.Ledger.CommissionBps = -1 }, "COMMISSION_BPS"},
		{"zero minimum payout", func(c *Config) { c.Ledger.MinPayoutMinor = 0 }, "MIN_PAYOUT_MINOR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
