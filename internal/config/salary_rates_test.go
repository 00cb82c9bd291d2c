package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagebook/internal/domain"
)

func validSettings() domain.GlobalSettings {
	return domain.GlobalSettings{
		domain.SettingBaseHourlyWageRate: "200",
		domain.SettingWageRatioExternal:  "1.2",
		domain.SettingWageRatioTHS:       "0.5",
	}
}

func TestSalaryRates(t *testing.T) {
	rates, err := SalaryRates(validSettings())

	require.NoError(t, err)
	assert.Equal(t, "200", rates.BaseHourlyRate.String())
	assert.Equal(t, "1.2", rates.RatioExternal.String())
	assert.Equal(t, "0.5", rates.RatioTHS.String())
}

func TestSalaryRates_MissingKey(t *testing.T) {
	for _, key := range []string{
		domain.SettingBaseHourlyWageRate,
		domain.SettingWageRatioExternal,
		domain.SettingWageRatioTHS,
	} {
		settings := validSettings()
		delete(settings, key)

		_, err := SalaryRates(settings)
		assert.ErrorIs(t, err, ErrMissingSetting, "key %s", key)
	}
}

func TestSalaryRates_InvalidValue(t *testing.T) {
	settings := validSettings()
	settings[domain.SettingWageRatioTHS] = "half"

	_, err := SalaryRates(settings)

	assert.ErrorIs(t, err, ErrInvalidSetting)
	assert.Contains(t, err.Error(), domain.SettingWageRatioTHS)
}

func TestSalaryRatesFromEnv(t *testing.T) {
	t.Setenv("BASE_HOURLY_WAGE_RATE", "250")
	t.Setenv("WAGE_RATIO_EXTERNAL", "1")
	t.Setenv("WAGE_RATIO_THS", "0.4")

	rates, err := SalaryRatesFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "250", rates.BaseHourlyRate.String())
	assert.Equal(t, "0.4", rates.RatioTHS.String())
}
