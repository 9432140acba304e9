// Package di provides dependency injection configuration for the
// MediaLog server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/medialogapp/medialog-server/internal/config"
	"github.com/medialogapp/medialog-server/internal/di/providers"
	"github.com/medialogapp/medialog-server/internal/logger"
	"github.com/medialogapp/medialog-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Export delivery
	do.Provide(injector, providers.ProvideMailer)
	do.Provide(injector, providers.ProvideDispatcher)

	// Business services
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideCategoryService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideCreatorService)
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideExportService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle
// management. This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.DispatcherHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.ExportService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
