package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nbox/ProductHunt-Statistic/internal/domain"
	fxmodules "github.com/nbox/ProductHunt-Statistic/internal/fx"
	"github.com/nbox/ProductHunt-Statistic/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runCatalog),
	).Run()
}

func runCatalog(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	catalog *service.CatalogService,
	db *sql.DB,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := catalog.Run(context.Background()); err != nil {
					logger.Error().Err(err).Msg("catalog run failed")
					code = exitCode(err)
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}
			return nil
		},
	})
}

// Exit codes: 0 success (including a zero-launch day), 2 configuration
// errors, 3 missing host README, 1 anything else.
func exitCode(err error) int {
	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	var fsErr *domain.FilesystemError
	if errors.As(err, &fsErr) {
		return 3
	}
	return 1
}
