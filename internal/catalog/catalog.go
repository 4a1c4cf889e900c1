// Package catalog provides the location data behind the dashboard pages.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codr1/bizpulse/internal/models"
)

var ErrLocationNotFound = errors.New("location not found")

// Provider is the data source of the dashboard. Implementations must be safe
// for concurrent use and must return copies that callers may modify.
type Provider interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id string) (models.Location, error)
}

// Memory serves a fixed set of locations.
type Memory struct {
	locations []models.Location
	byID      map[string]int
}

// NewMemory validates locations and returns a provider over a private copy.
func NewMemory(locations []models.Location) (*Memory, error) {
	if err := Validate(locations); err != nil {
		return nil, err
	}

	m := &Memory{
		locations: make([]models.Location, 0, len(locations)),
		byID:      make(map[string]int, len(locations)),
	}
	for i, loc := range locations {
		m.locations = append(m.locations, loc.Clone())
		m.byID[loc.ID] = i
	}
	return m, nil
}

func (m *Memory) ListLocations(ctx context.Context) ([]models.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]models.Location, 0, len(m.locations))
	for _, loc := range m.locations {
		results = append(results, loc.Clone())
	}
	return results, nil
}

func (m *Memory) GetLocation(ctx context.Context, id string) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}
	idx, ok := m.byID[id]
	if !ok {
		return models.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}
	return m.locations[idx].Clone(), nil
}

// Validate checks every location and that identifiers are unique.
func Validate(locations []models.Location) error {
	seen := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return err
		}
		if _, dup := seen[loc.ID]; dup {
			return fmt.Errorf("duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = struct{}{}
	}
	return nil
}

// Search returns up to limit locations whose name or city contains query,
// case-insensitively, in catalogue order.
func Search(ctx context.Context, provider Provider, query string, limit int) ([]models.Location, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil, nil
	}

	locations, err := provider.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.Location
	for _, loc := range locations {
		if strings.Contains(strings.ToLower(loc.Name), query) || strings.Contains(strings.ToLower(loc.City), query) {
			matches = append(matches, loc)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches, nil
}
