package fx

import (
	"github.com/nbox/ProductHunt-Statistic/internal/api"
	"github.com/nbox/ProductHunt-Statistic/internal/config"
	"github.com/nbox/ProductHunt-Statistic/internal/database"
	"github.com/nbox/ProductHunt-Statistic/internal/logger"
	"github.com/nbox/ProductHunt-Statistic/internal/repository"
	"github.com/nbox/ProductHunt-Statistic/internal/service"

	"go.uber.org/fx"
)

func ProvideFetcher(client *api.PHClient) service.Fetcher {
	return client
}

func ProvideRunStore(repo *repository.LaunchRepository) service.RunStore {
	return repo
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewLaunchRepository),
	fx.Provide(ProvideRunStore),
	// api client
	fx.Provide(api.NewPHClient),
	fx.Provide(ProvideFetcher),
	// svc
	fx.Provide(service.NewCatalogService),
)
