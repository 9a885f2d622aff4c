package resolve

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/0xalexb/confd/config"
	filefetcher "github.com/0xalexb/confd/config/fetcher/file"
	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/logging"
	"github.com/0xalexb/confd/value"
)

// FetcherFunc opens a fetcher for one file. It is called once per read.
type FetcherFunc func(path string) (config.DataFetcher, error)

// FileReader loads a file and parses it with the parser registered for its extension.
// Nothing is cached: every Read goes back to the filesystem.
type FileReader struct {
	registry *content.Registry
	fetch    FetcherFunc
	logger   logging.Logger
}

// NewFileReader creates a FileReader backed by the file fetcher.
func NewFileReader(registry *content.Registry, logger logging.Logger) *FileReader {
	return &FileReader{
		registry: registry,
		fetch:    fetchFile,
		logger:   logger,
	}
}

func fetchFile(path string) (config.DataFetcher, error) {
	return filefetcher.NewFetcher(path)()
}

// Read returns the parsed content of folder/filename.
// Missing files wrap ErrNotFound, unsupported extensions wrap content.ErrUnsupportedFormat
// and syntax errors wrap content.ErrMalformed.
func (r *FileReader) Read(folder, filename string) (value.Value, error) {
	path := filepath.Join(folder, filename)

	fetcher, err := r.fetch(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return value.Value{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return value.Value{}, fmt.Errorf("open %q: %w", filename, err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return value.Value{}, fmt.Errorf("read %q: %w", filename, err)
	}

	parser, err := r.registry.Lookup(filename)
	if err != nil {
		r.logger.Error("no parser for file", "filename", filename, "error", err)

		return value.Value{}, err
	}

	doc, err := parser.Parse(data)
	if err != nil {
		r.logger.Error("failed to parse file", "filename", filename, "error", err)

		return value.Value{}, fmt.Errorf("parse %q: %w", filename, err)
	}

	return doc, nil
}
