//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	marketplaceGateway "deliveryhub/internal/gateway/rest/marketplace"
	entries_get "deliveryhub/internal/handlers/rest/entries_get"
	entry_delete "deliveryhub/internal/handlers/rest/entry_delete"
	entry_status_put "deliveryhub/internal/handlers/rest/entry_status_put"
	intake_all_post "deliveryhub/internal/handlers/rest/intake_all_post"
	intake_post "deliveryhub/internal/handlers/rest/intake_post"
	orders_ready_get "deliveryhub/internal/handlers/rest/orders_ready_get"
	route_generate_post "deliveryhub/internal/handlers/rest/route_generate_post"
	routes_get "deliveryhub/internal/handlers/rest/routes_get"
	"deliveryhub/internal/handlers/tasks/backend_probe"
	"deliveryhub/internal/pkg/config"
	"deliveryhub/internal/pkg/factory/fault_guidance"
	"deliveryhub/internal/pkg/presenter/route_log"

	"deliveryhub/internal/repository/entrycache"
	entryService "deliveryhub/internal/service/entry"
	intakeService "deliveryhub/internal/service/intake"
	routeService "deliveryhub/internal/service/route"

	"deliveryhub/pkg/background"
	"deliveryhub/pkg/logger"

	"github.com/google/wire"
)

type (
	ProbeInterval time.Duration
)

type Application struct {
	ServiceEntry      ServiceEntry
	ServiceIntake     ServiceIntake
	ServiceRoute      ServiceRoute
	Guidance          *fault_guidance.GuidanceFactory
	BackgroundWorkers *background.Worker
}

type ServiceEntry interface {
	entries_get.Service
	entry_status_put.Service
	entry_delete.Service
}

type ServiceIntake interface {
	orders_ready_get.Service
	intake_post.Service
	intake_all_post.Service
}

type ServiceRoute interface {
	routes_get.Service
	route_generate_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	client *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideMarketplaceGateway,
		provideEntryCache,
		provideProbeInterval,

		provideServiceEntry,
		provideServiceIntake,
		provideServiceRoute,
		route_log.New,
		fault_guidance.New,

		provideBackendProbeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceEntry), new(*entryService.Service)),
		wire.Bind(new(ServiceIntake), new(*intakeService.Service)),
		wire.Bind(new(ServiceRoute), new(*routeService.Service)),

		wire.Bind(new(entryService.Gateway), new(*marketplaceGateway.Gateway)),
		wire.Bind(new(entryService.Cache), new(*entrycache.Cache)),
		wire.Bind(new(intakeService.Gateway), new(*marketplaceGateway.Gateway)),
		wire.Bind(new(intakeService.EntryRefresher), new(*entryService.Service)),
		wire.Bind(new(routeService.Gateway), new(*marketplaceGateway.Gateway)),
		wire.Bind(new(routeService.Presenter), new(*route_log.Presenter)),

		wire.Bind(new(backend_probe.Pinger), new(*marketplaceGateway.Gateway)),
	)
	return &Application{}, nil
}

func provideMarketplaceGateway(client *http.Client, cfg *config.Config) *marketplaceGateway.Gateway {
	return marketplaceGateway.New(client, cfg.Marketplace.BaseURL)
}

func provideEntryCache() *entrycache.Cache {
	return entrycache.New()
}

func provideServiceEntry(
	gateway entryService.Gateway,
	cache entryService.Cache,
) *entryService.Service {
	return entryService.New(gateway, cache)
}

func provideServiceIntake(
	gateway intakeService.Gateway,
	refresher intakeService.EntryRefresher,
) *intakeService.Service {
	return intakeService.New(gateway, refresher)
}

func provideServiceRoute(
	gateway routeService.Gateway,
	presenter routeService.Presenter,
) *routeService.Service {
	return routeService.New(gateway, presenter)
}

func provideProbeInterval(cfg *config.Config) ProbeInterval {
	return ProbeInterval(cfg.Tasks.BackendProbeInterval)
}

func provideBackendProbeTask(
	log logger.Logger,
	pinger backend_probe.Pinger,
	interval ProbeInterval,
) *backend_probe.BackendProbe {
	return backend_probe.NewBackendProbe(log, pinger, time.Duration(interval))
}

func provideTaskList(
	backendProbeTask *backend_probe.BackendProbe,
) []background.Task {
	return []background.Task{
		backendProbeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
