package catalog

import (
	"context"
	"sync/atomic"

	"github.com/codr1/bizpulse/internal/models"
)

// Reloading serves a file catalogue that can be re-read while serving.
// Each call sees one complete snapshot.
type Reloading struct {
	path    string
	current atomic.Pointer[Memory]
}

func NewReloading(path string) (*Reloading, error) {
	m, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	r := &Reloading{path: path}
	r.current.Store(m)
	return r, nil
}

func (r *Reloading) ListLocations(ctx context.Context) ([]models.Location, error) {
	return r.current.Load().ListLocations(ctx)
}

func (r *Reloading) GetLocation(ctx context.Context, id string) (models.Location, error) {
	return r.current.Load().GetLocation(ctx, id)
}

// Reload re-reads the file. On error the previous snapshot stays in service.
func (r *Reloading) Reload() (int, error) {
	m, err := LoadFile(r.path)
	if err != nil {
		return 0, err
	}
	r.current.Store(m)
	return len(m.locations), nil
}

func (r *Reloading) Path() string {
	return r.path
}
