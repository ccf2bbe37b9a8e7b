package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"ATELIER_WORKBOOK",
		"ATELIER_SOCIAL_CHARGE_RATE",
		"ATELIER_HOURLY_RATE",
		"ATELIER_OPERATOR_SHARE",
		"ATELIER_BUSINESS_SHARE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.WorkbookPath != DefaultWorkbookPath {
		t.Errorf("WorkbookPath = %q, want %q", cfg.WorkbookPath, DefaultWorkbookPath)
	}
	assertAmount(t, "SocialChargeRate", cfg.SocialChargeRate, "0.123")
	assertAmount(t, "HourlyRate", cfg.HourlyRate, "25")
	assertAmount(t, "OperatorShare", cfg.OperatorShare, "0.6")
	assertAmount(t, "BusinessShare", cfg.BusinessShare, "0.4")

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ATELIER_WORKBOOK", "/data/brocs.xlsx")
	t.Setenv("ATELIER_SOCIAL_CHARGE_RATE", "0.131")
	t.Setenv("ATELIER_HOURLY_RATE", "28")
	t.Setenv("ATELIER_OPERATOR_SHARE", "0.5")
	t.Setenv("ATELIER_BUSINESS_SHARE", "0.5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.WorkbookPath != "/data/brocs.xlsx" {
		t.Errorf("WorkbookPath = %q", cfg.WorkbookPath)
	}
	assertAmount(t, "SocialChargeRate", cfg.SocialChargeRate, "0.131")
	assertAmount(t, "HourlyRate", cfg.HourlyRate, "28")
	assertAmount(t, "OperatorShare", cfg.OperatorShare, "0.5")
	assertAmount(t, "BusinessShare", cfg.BusinessShare, "0.5")
}

func TestLoadConfig_BadNumber(t *testing.T) {
	t.Setenv("ATELIER_HOURLY_RATE", "beaucoup")

	if _, err := LoadConfig(); !models.IsValidation(err) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := testConfig()

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"empty workbook path", func(c *Config) { c.WorkbookPath = "" }, false},
		{"rate above one", func(c *Config) { c.SocialChargeRate = decimal.NewFromInt(2) }, false},
		{"negative rate", func(c *Config) { c.SocialChargeRate = decimal.RequireFromString("-0.1") }, false},
		{"zero hourly rate", func(c *Config) { c.HourlyRate = decimal.Zero }, false},
		{"shares above one", func(c *Config) {
			c.OperatorShare = decimal.RequireFromString("0.7")
			c.BusinessShare = decimal.RequireFromString("0.7")
		}, false},
		{"shares below one", func(c *Config) {
			c.OperatorShare = decimal.RequireFromString("0.3")
			c.BusinessShare = decimal.RequireFromString("0.3")
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
