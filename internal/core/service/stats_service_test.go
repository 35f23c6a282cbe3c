package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/ports"
)

func newTestDirectory(users []domain.User, operations []domain.Operation) ports.DirectoryService {
	return NewDirectoryService(newStubUserRepo(users...), newStubOperationRepo(operations...), discardLogger)
}

func TestMonthlyTally(t *testing.T) {
	operations := []domain.Operation{
		{OperationID: "1", Time: "2024-01-05 10:00:00"},
		{OperationID: "2", Time: "2024-01-20 11:00:00"},
		{OperationID: "3", Time: "2024-03-01 12:00:00"},
		{OperationID: "4", Time: "not a date"},
	}

	points := MonthlyTally(operations, "en")
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (empty months omitted): %v", len(points), points)
	}
	if points[0].Name != "Jan" || points[0].Value != 2 {
		t.Errorf("first point = %+v, want Jan/2", points[0])
	}
	if points[1].Name != "Mar" || points[1].Value != 1 {
		t.Errorf("second point = %+v, want Mar/1", points[1])
	}

	// Entries sum to the parseable record count.
	sum := 0
	for _, p := range points {
		sum += p.Value
	}
	if sum != 3 {
		t.Errorf("tally sum = %d, want 3", sum)
	}
}

func TestMonthlyTally_ArabicLabels(t *testing.T) {
	operations := []domain.Operation{{OperationID: "1", Time: "2024-12-25 10:00:00"}}

	points := MonthlyTally(operations, "ar")
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].Name != "ديسمبر" {
		t.Errorf("label = %q, want the Arabic December name", points[0].Name)
	}
}

func TestMonthlyTally_UnknownLangFallsBack(t *testing.T) {
	operations := []domain.Operation{{OperationID: "1", Time: "2024-12-25 10:00:00"}}
	points := MonthlyTally(operations, "fr")
	if len(points) != 1 || points[0].Name != "Dec" {
		t.Errorf("points = %v, want English labels for unknown language", points)
	}
}

func TestTypeTally(t *testing.T) {
	operations := []domain.Operation{
		{OperationID: "1", OperationType: "FRP Unlock"},
		{OperationID: "2", OperationType: "FRP Unlock"},
		{OperationID: "3", OperationType: "Flash Firmware"},
		{OperationID: "4"},
	}

	points := TypeTally(operations)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3: %v", len(points), points)
	}
	if points[0].Name != "FRP Unlock" || points[0].Value != 2 {
		t.Errorf("first point = %+v, want FRP Unlock/2", points[0])
	}

	sum := 0
	foundUnknown := false
	for _, p := range points {
		sum += p.Value
		if p.Name == "Unknown" {
			foundUnknown = true
		}
	}
	if sum != len(operations) {
		t.Errorf("tally sum = %d, want %d (every record bucketed)", sum, len(operations))
	}
	if !foundUnknown {
		t.Errorf("untyped record not bucketed under Unknown: %v", points)
	}
}

func TestCountryTally_SkipsEmptyCountry(t *testing.T) {
	users := []domain.User{
		{ID: "1", Country: "Egypt"},
		{ID: "2", Country: "Egypt"},
		{ID: "3", Country: "Morocco"},
		{ID: "4"},
	}

	points := CountryTally(users)
	sum := 0
	for _, p := range points {
		sum += p.Value
		if p.Name == "" {
			t.Errorf("empty country bucketed: %v", points)
		}
	}
	if sum != 3 {
		t.Errorf("tally sum = %d, want 3 (users without a country excluded)", sum)
	}
	if points[0].Name != "Egypt" || points[0].Value != 2 {
		t.Errorf("first point = %+v, want Egypt/2", points[0])
	}
}

func TestDashboard_Overview(t *testing.T) {
	users := []domain.User{
		{ID: "1", UID: "1", UserType: domain.UserTypeMonthly},
		{ID: "2", UID: "2", UserType: domain.UserTypeCredits},
		{ID: "3", UID: "3"}, // defaults to a monthly license
	}
	operations := []domain.Operation{
		{OperationID: "a", Time: "2024-01-05 10:00:00"},
		{OperationID: "b", Time: "2024-02-05 10:00:00"},
	}
	svc := NewStatsService(newTestDirectory(users, operations), nil, discardLogger)

	result, err := svc.Dashboard(context.Background(), "en")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	o := result.Overview
	if o.TotalUsers != 3 || o.TotalOperations != 2 {
		t.Errorf("totals = %d users / %d operations, want 3/2", o.TotalUsers, o.TotalOperations)
	}
	if o.MonthlyLicenseUsers != 2 || o.CreditsLicenseUsers != 1 {
		t.Errorf("license split = %d monthly / %d credits, want 2/1", o.MonthlyLicenseUsers, o.CreditsLicenseUsers)
	}
}

func TestDashboard_ServedFromCache(t *testing.T) {
	users := []domain.User{{ID: "1", UID: "1"}}
	cache := newStubStatsCache()
	svc := NewStatsService(newTestDirectory(users, nil), cache, discardLogger)

	first, err := svc.Dashboard(context.Background(), "en")
	if err != nil {
		t.Fatalf("first Dashboard: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := svc.Dashboard(context.Background(), "en")
	if err != nil {
		t.Fatalf("second Dashboard: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("second call recomputed instead of using the cache (sets = %d)", cache.sets)
	}
	if second.Overview != first.Overview {
		t.Errorf("cached overview %+v differs from computed %+v", second.Overview, first.Overview)
	}
}

func TestDashboard_CacheFailureRecomputes(t *testing.T) {
	users := []domain.User{{ID: "1", UID: "1"}}
	cache := newStubStatsCache()
	cache.err = errors.New("redis down")
	svc := NewStatsService(newTestDirectory(users, nil), cache, discardLogger)

	result, err := svc.Dashboard(context.Background(), "en")
	if err != nil {
		t.Fatalf("Dashboard must survive a broken cache: %v", err)
	}
	if result.Overview.TotalUsers != 1 {
		t.Errorf("overview = %+v, want 1 user", result.Overview)
	}
}

func TestDashboard_PropagatesFetchError(t *testing.T) {
	users := newStubUserRepo()
	users.listErr = errors.New("network unreachable")
	directory := NewDirectoryService(users, newStubOperationRepo(), discardLogger)
	svc := NewStatsService(directory, nil, discardLogger)

	_, err := svc.Dashboard(context.Background(), "en")
	var ferr *domain.FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
}
