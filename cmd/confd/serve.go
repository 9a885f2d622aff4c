package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/0xalexb/confd"
	"github.com/0xalexb/confd/config"
	"github.com/0xalexb/confd/config/fetcher/file"
	"github.com/0xalexb/confd/config/fetcher/layered"
	yamlparser "github.com/0xalexb/confd/config/parser/yaml"
)

// settingsFlags maps serve flags to Settings keys.
var settingsFlags = map[string]string{ //nolint:gochecknoglobals
	"root":            "root",
	"address":         "address",
	"log-level":       "log_level",
	"api-prefix":      "api_prefix",
	"request-timeout": "request_timeout",
}

func newServeCmd() *cobra.Command {
	var settingsPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

Settings are merged from, lowest priority first: the --settings YAML file,
CONFD_* environment variables (CONFD_LOG_LEVEL sets log_level), then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(settingsPath, cmd.Flags())
			if err != nil {
				return err
			}

			app := confd.NewApp(
				confd.WithLogLevel(settings.LogLevel),
				confd.WithServer(*settings),
			)

			err = app.Err()
			if err != nil {
				return fmt.Errorf("building app: %w", err)
			}

			app.Run()

			return nil
		},
	}

	flags := serveCmd.Flags()
	flags.StringVar(&settingsPath, "settings", "", "YAML settings file")
	flags.String("root", confd.DefaultRoot, "config root directory")
	flags.String("address", confd.DefaultAddress, "listen address")
	flags.String("log-level", confd.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.String("api-prefix", confd.DefaultAPIPrefix, "URL prefix for lookups")
	flags.String("request-timeout", confd.DefaultRequestTimeout, "maximum time spent on one request")

	return serveCmd
}

// loadSettings merges the settings file, environment and explicitly set flags,
// then applies defaults and validates the result.
func loadSettings(settingsPath string, flags *pflag.FlagSet) (*confd.Settings, error) {
	opts := []layered.Option{layered.WithOverrides(changedFlags(flags))}

	if settingsPath != "" {
		base, err := file.NewFetcher(settingsPath)()
		if err != nil {
			return nil, fmt.Errorf("settings file: %w", err)
		}

		opts = append(opts, layered.WithBase(base))
	}

	settings, err := config.Provider(&confd.Settings{}, "")(yamlparser.NewParser(), layered.NewFetcher(opts...))
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	return settings, nil
}

func changedFlags(flags *pflag.FlagSet) map[string]any {
	overrides := make(map[string]any)

	for name, key := range settingsFlags {
		flag := flags.Lookup(name)
		if flag != nil && flag.Changed {
			overrides[key] = flag.Value.String()
		}
	}

	return overrides
}
