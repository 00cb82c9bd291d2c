package domain

// GlobalSettings is the flat key-value store the surrounding application
// keeps organization-wide configuration in. Values are stored as strings and
// resolved to typed values at the configuration boundary.
type GlobalSettings map[string]string

// Setting keys consumed by the salary engine.
const (
	SettingWageRatioExternal  = "salary.wageRatio.external"
	SettingWageRatioTHS       = "salary.wageRatio.ths"
	SettingBaseHourlyWageRate = "salary.baseHourlyWageRate"
)
