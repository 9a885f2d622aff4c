package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	// ErrEmptyData is returned for an empty or blank document.
	ErrEmptyData = errors.New("empty data")
	// ErrPathNotFound is returned when the requested section is absent.
	ErrPathNotFound = errors.New("path not found")
)

// Parser decodes YAML settings documents.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the section of data named by path into target.
// An empty path decodes the whole document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("decoding document: %w", err)
		}

		return nil
	}

	section, err := yaml.PathString(sectionPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := section.ReadNode(bytes.NewReader(data))
	if yaml.IsNotFoundNodeError(err) || (err == nil && node == nil) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// sectionPath turns "confd:limits" into the YAMLPath "$.confd.limits".
func sectionPath(path string) string {
	return "$." + strings.ReplaceAll(path, ":", ".")
}
