package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/codr1/bizpulse/internal/catalog"
	"github.com/codr1/bizpulse/internal/models"
)

// NewTestCatalog returns the built-in five-location catalogue.
func NewTestCatalog(t *testing.T) *catalog.Memory {
	t.Helper()
	return catalog.NewStatic()
}

// NewCatalog builds an in-memory catalogue from locs, failing the test if
// they are invalid.
func NewCatalog(t *testing.T, locs ...models.Location) *catalog.Memory {
	t.Helper()

	memory, err := catalog.NewMemory(locs)
	if err != nil {
		t.Fatalf("create test catalog: %v", err)
	}
	return memory
}

// Location returns a valid location with a flat week of bookings.
func Location(id, name, city string, totalHours float64) models.Location {
	days := make([]models.DailyBooking, 0, models.DaysPerWeek)
	for _, day := range models.Weekdays() {
		days = append(days, models.DailyBooking{Day: day, Hours: 10})
	}
	return models.Location{
		ID:            id,
		Name:          name,
		City:          city,
		TotalHours:    totalHours,
		Revenue:       models.PeriodMetrics{AllTime: totalHours * 100, LastWeek: 1000, LastMonth: 4000},
		HoursBooked:   models.PeriodMetrics{AllTime: totalHours, LastWeek: 70, LastMonth: 300},
		DailyBookings: days,
	}
}

// WriteCatalogFile writes locs as a YAML catalogue in a temp dir and
// returns its path.
func WriteCatalogFile(t *testing.T, locs ...models.Location) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "locations.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create catalog file: %v", err)
	}
	defer f.Close()

	if err := catalog.Encode(f, locs); err != nil {
		t.Fatalf("encode catalog file: %v", err)
	}
	return path
}

// FailingProvider returns Err from every call.
type FailingProvider struct {
	Err error
}

func (p FailingProvider) ListLocations(ctx context.Context) ([]models.Location, error) {
	return nil, p.Err
}

func (p FailingProvider) GetLocation(ctx context.Context, id string) (models.Location, error) {
	return models.Location{}, p.Err
}
