package content

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/0xalexb/confd/value"
)

// ErrMalformed is wrapped by parsers when the input is not valid for their format.
var ErrMalformed = errors.New("malformed content")

// ErrUnsupportedFormat is returned when no parser is registered for a file extension.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrDuplicateExtension is returned when an extension is registered twice.
var ErrDuplicateExtension = errors.New("extension already registered")

// ErrEmptyExtension is returned when a format is registered without an extension.
var ErrEmptyExtension = errors.New("extension must not be empty")

// ErrNilParser is returned when a format is registered without a parser.
var ErrNilParser = errors.New("parser must not be nil")

// Parser turns raw content into a structured value.
type Parser interface {
	Parse(data []byte) (value.Value, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(data []byte) (value.Value, error)

// Parse calls f(data).
func (f ParserFunc) Parse(data []byte) (value.Value, error) {
	return f(data)
}

// Format binds a file extension to a parser.
type Format struct {
	Extension string
	Parser    Parser
}

// Registry maps file extensions to parsers. It is immutable after construction
// and safe for concurrent use.
type Registry struct {
	parsers map[string]Parser
	order   []string
}

// NewRegistry builds a Registry from formats. Extensions are matched case-insensitively
// and may be given with or without the leading dot. Registration order is kept and
// reported by Extensions.
func NewRegistry(formats ...Format) (*Registry, error) {
	registry := &Registry{
		parsers: make(map[string]Parser, len(formats)),
		order:   make([]string, 0, len(formats)),
	}

	for _, format := range formats {
		ext := normalizeExtension(format.Extension)
		if ext == "" {
			return nil, ErrEmptyExtension
		}

		if format.Parser == nil {
			return nil, fmt.Errorf("extension %q: %w", ext, ErrNilParser)
		}

		if _, exists := registry.parsers[ext]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateExtension, ext)
		}

		registry.parsers[ext] = format.Parser
		registry.order = append(registry.order, ext)
	}

	return registry, nil
}

// Lookup returns the parser registered for the extension of filename.
func (r *Registry) Lookup(filename string) (Parser, error) {
	ext := normalizeExtension(filepath.Ext(filename))

	parser, ok := r.parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q has extension %q", ErrUnsupportedFormat, filename, ext)
	}

	return parser, nil
}

// Extensions returns the registered extensions, without dots, in registration order.
func (r *Registry) Extensions() []string {
	return slices.Clone(r.order)
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
