package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"stagebook/internal/domain"
	"stagebook/internal/modules/salary"
)

var (
	ErrMissingSetting = errors.New("missing setting")
	ErrInvalidSetting = errors.New("invalid setting value")
)

// Env variable names used when the rates come from the process environment
// instead of the persisted global settings.
const (
	envWageRatioExternal  = "WAGE_RATIO_EXTERNAL"
	envWageRatioTHS       = "WAGE_RATIO_THS"
	envBaseHourlyWageRate = "BASE_HOURLY_WAGE_RATE"
)

// SalaryRates resolves the wage ratios and base hourly wage out of the global
// settings snapshot. All three keys are mandatory; a missing or malformed
// value fails here so the engines only ever see resolved numbers.
func SalaryRates(settings domain.GlobalSettings) (salary.Rates, error) {
	base, err := decimalSetting(settings, domain.SettingBaseHourlyWageRate)
	if err != nil {
		return salary.Rates{}, err
	}
	external, err := decimalSetting(settings, domain.SettingWageRatioExternal)
	if err != nil {
		return salary.Rates{}, err
	}
	ths, err := decimalSetting(settings, domain.SettingWageRatioTHS)
	if err != nil {
		return salary.Rates{}, err
	}
	return salary.Rates{
		BaseHourlyRate: base,
		RatioExternal:  external,
		RatioTHS:       ths,
	}, nil
}

// SalaryRatesFromEnv reads the rates from the environment, loading a .env
// file first when one exists.
func SalaryRatesFromEnv() (salary.Rates, error) {
	_ = godotenv.Load()
	return SalaryRates(domain.GlobalSettings{
		domain.SettingBaseHourlyWageRate: os.Getenv(envBaseHourlyWageRate),
		domain.SettingWageRatioExternal:  os.Getenv(envWageRatioExternal),
		domain.SettingWageRatioTHS:       os.Getenv(envWageRatioTHS),
	})
}

func decimalSetting(settings domain.GlobalSettings, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(settings[key])
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrMissingSetting, key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, key, raw)
	}
	return value, nil
}
