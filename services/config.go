package services

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

// Defaults observed for the current tax year. The social charge rate
// changes by tax year and the split is a business decision, so all of
// them are environment-tunable rather than literals in the formulas.
const (
	DefaultWorkbookPath     = "atelier.xlsx"
	defaultSocialChargeRate = "0.123"
	defaultHourlyRate       = "25"
	defaultOperatorShare    = "0.60"
	defaultBusinessShare    = "0.40"
)

// Config carries the tunable business parameters. It is loaded once at
// startup and passed by value; nothing mutates it afterwards.
type Config struct {
	// WorkbookPath locates the xlsx system of record.
	WorkbookPath string

	// SocialChargeRate is the self-employed social contribution taken
	// off a sale price when the sale opts in (e.g. 0.123 for 12.3%).
	SocialChargeRate decimal.Decimal

	// HourlyRate is the operator's pay per renovation hour, in euros.
	HourlyRate decimal.Decimal

	// OperatorShare and BusinessShare split the residual profit above
	// the hourly-pay floor. They must sum to exactly 1.
	OperatorShare decimal.Decimal
	BusinessShare decimal.Decimal
}

// LoadConfig reads configuration from the environment, after loading a
// .env file when one exists (a missing .env is not an error).
func LoadConfig() (Config, error) {
	godotenv.Load()

	cfg := Config{WorkbookPath: envOr("ATELIER_WORKBOOK", DefaultWorkbookPath)}

	var err error
	if cfg.SocialChargeRate, err = envDecimal("ATELIER_SOCIAL_CHARGE_RATE", defaultSocialChargeRate); err != nil {
		return Config{}, err
	}
	if cfg.HourlyRate, err = envDecimal("ATELIER_HOURLY_RATE", defaultHourlyRate); err != nil {
		return Config{}, err
	}
	if cfg.OperatorShare, err = envDecimal("ATELIER_OPERATOR_SHARE", defaultOperatorShare); err != nil {
		return Config{}, err
	}
	if cfg.BusinessShare, err = envDecimal("ATELIER_BUSINESS_SHARE", defaultBusinessShare); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants. It runs once at
// startup, not per call: a process whose shares do not sum to 1 must
// not come up at all.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.WorkbookPath, validation.Required),
		validation.Field(&c.SocialChargeRate, validation.By(decimalBetween(decimal.Zero, decimal.NewFromInt(1)))),
		validation.Field(&c.HourlyRate, validation.By(decimalPositive)),
		validation.Field(&c.OperatorShare, validation.By(decimalBetween(decimal.Zero, decimal.NewFromInt(1)))),
		validation.Field(&c.BusinessShare, validation.By(decimalBetween(decimal.Zero, decimal.NewFromInt(1)))),
	)
	if err != nil {
		return &models.ValidationError{Field: "config", Message: err.Error()}
	}
	if !c.OperatorShare.Add(c.BusinessShare).Equal(decimal.NewFromInt(1)) {
		return &models.ValidationError{
			Field:   "config",
			Message: fmt.Sprintf("operator share %s + business share %s must equal 1", c.OperatorShare, c.BusinessShare),
		}
	}
	return nil
}

func decimalPositive(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return fmt.Errorf("must be a positive amount")
	}
	return nil
}

func decimalBetween(min, max decimal.Decimal) validation.RuleFunc {
	return func(value any) error {
		d, ok := value.(decimal.Decimal)
		if !ok || d.LessThan(min) || d.GreaterThan(max) {
			return fmt.Errorf("must be between %s and %s", min, max)
		}
		return nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDecimal(key, fallback string) (decimal.Decimal, error) {
	raw := envOr(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &models.ValidationError{Field: key, Message: fmt.Sprintf("not a number: %q", raw)}
	}
	return d, nil
}
