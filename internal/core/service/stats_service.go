package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

// StatsCache abstracts the dashboard snapshot store (Redis). Cache failures
// are never fatal; the service recomputes and logs a warning.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// monthNames holds the localized month labels used by the monthly tally.
var monthNames = map[string][12]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"ar": {"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
}

const unknownTypeLabel = "Unknown"

type statsService struct {
	directory ports.DirectoryService
	cache     StatsCache
	log       zerolog.Logger
}

// NewStatsService returns a StatsService. The cache may be nil, in which case
// every call recomputes from the directory.
func NewStatsService(directory ports.DirectoryService, cache StatsCache, log zerolog.Logger) ports.StatsService {
	return &statsService{directory: directory, cache: cache, log: log}
}

// Dashboard returns the full aggregate snapshot, served from cache when a
// fresh one exists for the requested language.
func (s *statsService) Dashboard(ctx context.Context, lang string) (*ports.DashboardResult, error) {
	if _, ok := monthNames[lang]; !ok {
		lang = "en"
	}
	cacheKey := "stats:dashboard:" + lang

	if s.cache != nil {
		var cached ports.DashboardResult
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, recomputing")
		} else if hit {
			return &cached, nil
		}
	}

	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	operations, err := s.directory.ListOperations(ctx)
	if err != nil {
		return nil, err
	}

	result := &ports.DashboardResult{
		Overview:          overview(users, operations),
		MonthlyOperations: MonthlyTally(operations, lang),
		OperationTypes:    TypeTally(operations),
		UserCountries:     CountryTally(users),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return result, nil
}

func (s *statsService) MonthlyOperations(ctx context.Context, lang string) ([]ports.ChartPoint, error) {
	if _, ok := monthNames[lang]; !ok {
		lang = "en"
	}
	operations, err := s.directory.ListOperations(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyTally(operations, lang), nil
}

func (s *statsService) OperationTypes(ctx context.Context) ([]ports.ChartPoint, error) {
	operations, err := s.directory.ListOperations(ctx)
	if err != nil {
		return nil, err
	}
	return TypeTally(operations), nil
}

func (s *statsService) UserCountries(ctx context.Context) ([]ports.ChartPoint, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return CountryTally(users), nil
}

func overview(users []domain.User, operations []domain.Operation) ports.DashboardOverview {
	o := ports.DashboardOverview{
		TotalUsers:      len(users),
		TotalOperations: len(operations),
	}
	for _, u := range users {
		switch u.UserType {
		case domain.UserTypeMonthly:
			o.MonthlyLicenseUsers++
		case domain.UserTypeCredits:
			o.CreditsLicenseUsers++
		}
	}
	return o
}

// MonthlyTally buckets operations by calendar month. Timestamps that yield no
// month are skipped, so the entries sum to the count of parseable records.
// Only populated months appear, in calendar order.
func MonthlyTally(operations []domain.Operation, lang string) []ports.ChartPoint {
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames["en"]
	}

	var counts [12]int
	for _, op := range operations {
		if m, ok := domain.MonthOf(op.Time); ok {
			counts[int(m)-int(time.January)]++
		}
	}

	points := make([]ports.ChartPoint, 0, 12)
	for i, n := range counts {
		if n > 0 {
			points = append(points, ports.ChartPoint{Name: names[i], Value: n})
		}
	}
	return points
}

// TypeTally buckets operations by type tag, empty tags under "Unknown",
// ordered by descending count (name ascending on ties for determinism).
func TypeTally(operations []domain.Operation) []ports.ChartPoint {
	counts := make(map[string]int)
	for _, op := range operations {
		t := op.OperationType
		if t == "" {
			t = unknownTypeLabel
		}
		counts[t]++
	}
	return sortedPoints(counts)
}

// CountryTally buckets users by country. Users without a country are excluded
// entirely, not bucketed under a placeholder.
func CountryTally(users []domain.User) []ports.ChartPoint {
	counts := make(map[string]int)
	for _, u := range users {
		if u.Country != "" {
			counts[u.Country]++
		}
	}
	return sortedPoints(counts)
}

func sortedPoints(counts map[string]int) []ports.ChartPoint {
	points := make([]ports.ChartPoint, 0, len(counts))
	for name, value := range counts {
		points = append(points, ports.ChartPoint{Name: name, Value: value})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})
	return points
}
