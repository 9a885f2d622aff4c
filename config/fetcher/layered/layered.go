package layered

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/0xalexb/confd/config"
)

// DefaultEnvPrefix is the prefix of environment variables read by default.
const DefaultEnvPrefix = "CONFD_"

// errReadNotSupported is returned by providers that only expose one of koanf's read methods.
var errReadNotSupported = errors.New("read method not supported by provider")

// Fetcher implements config.DataFetcher by merging several sources with koanf.
// Later sources win: base document, then environment, then overrides.
type Fetcher struct {
	base      config.DataFetcher
	envPrefix string
	overrides map[string]any
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBase sets a YAML document used as the lowest-priority layer.
func WithBase(base config.DataFetcher) Option {
	return func(f *Fetcher) {
		f.base = base
	}
}

// WithEnvPrefix sets the environment variable prefix. CONFD_LOG_LEVEL becomes log_level.
func WithEnvPrefix(prefix string) Option {
	return func(f *Fetcher) {
		f.envPrefix = prefix
	}
}

// WithOverrides sets keys that take precedence over every other layer.
func WithOverrides(overrides map[string]any) Option {
	return func(f *Fetcher) {
		for key, val := range overrides {
			f.overrides[key] = val
		}
	}
}

// NewFetcher creates a layered Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	fetcher := &Fetcher{
		base:      nil,
		envPrefix: DefaultEnvPrefix,
		overrides: make(map[string]any),
	}

	for _, apply := range opts {
		apply(fetcher)
	}

	return fetcher
}

// Fetch merges all layers and returns the result as a YAML document.
func (f *Fetcher) Fetch() ([]byte, error) {
	k := koanf.New(".")

	if f.base != nil {
		data, err := f.base.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading base layer: %w", err)
		}

		if len(strings.TrimSpace(string(data))) > 0 {
			err = k.Load(bytesProvider(data), koanfyaml.Parser())
			if err != nil {
				return nil, fmt.Errorf("loading base layer: %w", err)
			}
		}
	}

	err := k.Load(env.Provider(f.envPrefix, ".", f.envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	err = k.Load(mapProvider(f.overrides), nil)
	if err != nil {
		return nil, fmt.Errorf("loading overrides: %w", err)
	}

	out, err := yaml.Marshal(k.Raw())
	if err != nil {
		return nil, fmt.Errorf("encoding merged layers: %w", err)
	}

	return out, nil
}

// envKey maps CONFD_LOG_LEVEL to log_level.
func (f *Fetcher) envKey(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, f.envPrefix))
}

// bytesProvider exposes raw document bytes to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b bytesProvider) Read() (map[string]any, error) {
	return nil, errReadNotSupported
}

// mapProvider exposes an in-memory map to koanf.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errReadNotSupported
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
