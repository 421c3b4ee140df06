package inject

import (
	"fmt"

	"onebuttonprompt/internal/config"
	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/registry"
	"onebuttonprompt/internal/server"
	"onebuttonprompt/internal/storage"

	"github.com/samber/do"
)

// Setup wires the service graph. Services are built lazily on first invoke and
// injector.Shutdown tears them down in reverse order, server before storage.
func Setup(logger core.Logger) *do.Injector {
	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug("%s", fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue[core.Logger](injector, logger)

	do.Provide[config.ServerConfig](injector, func(i *do.Injector) (config.ServerConfig, error) {
		return config.LoadServerConfigFromEnv(do.MustInvoke[core.Logger](i))
	})
	do.Provide[core.StorageInterface](injector, func(i *do.Injector) (core.StorageInterface, error) {
		cfg, err := do.Invoke[config.ServerConfig](i)
		if err != nil {
			return nil, err
		}
		return storage.InitStorage(cfg.RedisURL, cfg.StatsFile, do.MustInvoke[core.Logger](i)), nil
	})
	do.Provide[*registry.Registry](injector, func(i *do.Injector) (*registry.Registry, error) {
		return registry.NewDefault(registry.WithLogger(do.MustInvoke[core.Logger](i))), nil
	})
	do.Provide[*server.Server](injector, func(i *do.Injector) (*server.Server, error) {
		cfg, err := do.Invoke[config.ServerConfig](i)
		if err != nil {
			return nil, err
		}
		if cfg.Storage, err = do.Invoke[core.StorageInterface](i); err != nil {
			return nil, err
		}
		cfg.Logger = do.MustInvoke[core.Logger](i)
		return server.NewServer(cfg, do.MustInvoke[*registry.Registry](i))
	})

	return injector
}
