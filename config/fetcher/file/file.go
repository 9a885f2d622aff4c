package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a single file.
// The content is read at construction time and held for the Fetcher's lifetime.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor for a Fetcher reading fpath, so fx can decide
// when the read happens. The constructor fails if the path cannot be stat'ed or read,
// or if it is a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Fetch returns a copy of the bytes read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the Fetcher read.
func (f *Fetcher) Path() string {
	return f.filepath
}
