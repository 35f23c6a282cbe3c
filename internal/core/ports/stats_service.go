package ports

import "context"

// ChartPoint is one {name, value} pair of a tally, shaped for the console's
// chart components.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardOverview carries the headline counters shown above the charts.
type DashboardOverview struct {
	TotalUsers          int `json:"total_users"`
	MonthlyLicenseUsers int `json:"monthly_license_users"`
	CreditsLicenseUsers int `json:"credits_license_users"`
	TotalOperations     int `json:"total_operations"`
}

// DashboardResult is the full aggregate snapshot served to the dashboard.
type DashboardResult struct {
	Overview          DashboardOverview `json:"overview"`
	MonthlyOperations []ChartPoint      `json:"monthly_operations"`
	OperationTypes    []ChartPoint      `json:"operation_types"`
	UserCountries     []ChartPoint      `json:"user_countries"`
}

// StatsService computes dashboard aggregates over the normalized collections.
// The lang parameter selects the month-name table ("en" or "ar"); unknown
// values fall back to English.
type StatsService interface {
	Dashboard(ctx context.Context, lang string) (*DashboardResult, error)
	MonthlyOperations(ctx context.Context, lang string) ([]ChartPoint, error)
	OperationTypes(ctx context.Context) ([]ChartPoint, error)
	UserCountries(ctx context.Context) ([]ChartPoint, error)
}
