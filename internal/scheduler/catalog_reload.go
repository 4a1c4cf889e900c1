package scheduler

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/bizpulse/internal/metrics"
)

const catalogReloadJobName = "catalog_reload"

// Reloader is a catalogue that can re-read its source.
type Reloader interface {
	Reload() (int, error)
	Path() string
}

// RegisterCatalogReload re-reads the catalogue file on cronExpr.
func RegisterCatalogReload(s *Service, cronExpr string, reloader Reloader) error {
	if reloader == nil {
		return fmt.Errorf("catalog reload job requires a reloader")
	}

	jobLogger := log.With().
		Str("component", "catalog_reload_job").
		Str("job_name", catalogReloadJobName).
		Str("path", reloader.Path()).
		Logger()

	if _, err := s.AddJob(catalogReloadJobName, cronExpr, func() {
		reloadCatalog(reloader, &jobLogger)
	}); err != nil {
		return fmt.Errorf("add catalog reload job: %w", err)
	}
	return nil
}

func reloadCatalog(reloader Reloader, logger *zerolog.Logger) {
	count, err := reloader.Reload()
	if err != nil {
		metrics.IncCatalogReload(false)
		logger.Error().Err(err).Msg("Catalog reload failed; keeping previous catalog")
		return
	}
	metrics.IncCatalogReload(true)
	logger.Info().Int("locations", count).Msg("Catalog reloaded")
}
