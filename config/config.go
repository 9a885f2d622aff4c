package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes the section of a document named by path into target.
// Paths use colons between keys: "confd:limits" is config["confd"]["limits"],
// and "" is the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns the raw bytes of a settings source.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by settings that can check themselves.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by settings that fill their own empty fields.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a constructor that fetches, parses, defaults and validates target.
// The returned function has the shape fx.Provide expects.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("fetching settings: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing settings: %w", err)
		}

		applyDefaults(target, path)

		if validator, ok := any(target).(Validator); ok {
			err = validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("invalid settings: %w", err)
			}
		}

		return target, nil
	}
}

func applyDefaults(target any, path string) {
	defaulter, ok := target.(Defaulter)
	if !ok || !defaulter.SetDefaults() {
		return
	}

	slog.Debug("defaults applied", slog.String("path", path), slog.String("type", fmt.Sprintf("%T", target)))
}
