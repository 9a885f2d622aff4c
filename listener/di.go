package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named HTTP listener. The name tags both the
// http.Handler and the Config the module consumes. Options, when given, are
// supplied as that Config; otherwise it must come from elsewhere in the graph.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts, fx.Invoke(
		fx.Annotate(
			func(
				lifecycle fx.Lifecycle,
				shutdowner fx.Shutdowner,
				logger *slog.Logger,
				handler http.Handler,
				listenerCfg Config,
			) error {
				srv, err := NewServer(name, handler, listenerCfg, logger, func() {
					shutdownErr := shutdowner.Shutdown()
					if shutdownErr != nil {
						logger.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
					}
				})
				if err != nil {
					return err
				}

				lifecycle.Append(fx.Hook{
					OnStart: srv.Start,
					OnStop:  srv.Stop,
				})

				return nil
			},
			fx.ParamTags("", "", "", tag, tag),
		),
	))

	return fx.Module(name, moduleOpts...)
}
