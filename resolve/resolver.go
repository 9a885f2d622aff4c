package resolve

import (
	"strings"

	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/logging"
	"github.com/0xalexb/confd/value"
)

// Outcome is the terminal result of resolving one request path.
// Value is set only when Kind is Found; Err is set for failure kinds other
// than a field chain miss.
type Outcome struct {
	Kind  Kind
	Value value.Value
	Err   error
}

// Resolver ties the path resolver, file reader and projector together.
type Resolver struct {
	paths  *PathResolver
	files  *FileReader
	logger logging.Logger
}

// New creates a Resolver for root using the formats in registry.
func New(root string, registry *content.Registry, logger logging.Logger) (*Resolver, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	paths, err := NewPathResolver(root, registry.Extensions(), logger)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		paths:  paths,
		files:  NewFileReader(registry, logger),
		logger: logger,
	}, nil
}

// Root returns the absolute config root.
func (r *Resolver) Root() string {
	return r.paths.Root()
}

// Resolve maps requestPath to a value under the config root.
func (r *Resolver) Resolve(requestPath string) Outcome {
	loc, err := r.paths.Resolve(requestPath)
	if err != nil {
		return r.failed(requestPath, err)
	}

	doc, err := r.files.Read(loc.Folder, loc.Filename)
	if err != nil {
		return r.failed(requestPath, err)
	}

	leaf, ok := Project(doc, loc.Fields)
	if !ok {
		r.logger.Debug("field not found", "path", requestPath, "fields", strings.Join(loc.Fields, "/"))

		return Outcome{Kind: NotFound, Value: value.Value{}, Err: nil}
	}

	return Outcome{Kind: Found, Value: leaf, Err: nil}
}

func (r *Resolver) failed(requestPath string, err error) Outcome {
	kind := Classify(err)

	if kind == InternalFailure {
		r.logger.Error("resolution failed", "path", requestPath, "error", err)
	} else {
		r.logger.Debug("resolution failed", "path", requestPath, "outcome", kind.String(), "error", err)
	}

	return Outcome{Kind: kind, Value: value.Value{}, Err: err}
}
