package confd

import (
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/0xalexb/confd/api"
	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/listener"
	"github.com/0xalexb/confd/listener/middleware"
	"github.com/0xalexb/confd/resolve"
)

// ListenerName tags the lookup API handler and its listener in the Fx graph.
const ListenerName = "confd"

// ServerModule wires the resolver, the lookup API and its HTTP listener for settings.
// Settings are expected to be defaulted and validated already.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ServerModule(settings Settings) fx.Option {
	timeout, err := settings.Timeout()
	if err != nil {
		return fx.Error(err)
	}

	return fx.Module("server",
		fx.Supply(settings),
		fx.Provide(
			resolve.DefaultRegistry,
			func(registry *content.Registry, logger *slog.Logger) (*resolve.Resolver, error) {
				return resolve.New(settings.Root, registry, logger)
			},
			api.NewMetrics,
			fx.Annotate(
				func(resolver *resolve.Resolver, metrics *api.Metrics, logger *slog.Logger) (http.Handler, error) {
					handler, err := api.NewHandler(resolver, logger,
						api.WithPrefix(settings.APIPrefix),
						api.WithMetrics(metrics),
						api.WithBuildInfo(api.BuildInfo{Version: Version, Commit: Commit, CompiledAt: CompiledAt}),
					)
					if err != nil {
						return nil, err //nolint:wrapcheck
					}

					return middleware.Chain(handler,
						middleware.RequestID(),
						middleware.Logging(logger),
						middleware.Recovery(logger),
						middleware.Timeout(timeout, logger),
					), nil
				},
				fx.ResultTags(`name:"`+ListenerName+`"`),
			),
		),
		fx.Invoke(func(resolver *resolve.Resolver, logger *slog.Logger) {
			logger.Info("serving config root", "root", resolver.Root(), "prefix", settings.APIPrefix)
		}),
		listener.NewModule(ListenerName, listener.WithAddress(settings.Address)),
	)
}
