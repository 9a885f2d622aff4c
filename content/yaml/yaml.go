// Package yaml parses YAML documents into value.Value using github.com/goccy/go-yaml.
package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/value"
)

// Parser implements content.Parser for YAML. Only the first document of a stream is read;
// an empty document parses to Null.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals data and converts the result into a Value.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	var native any

	err := yaml.Unmarshal(data, &native)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: yaml: %w", content.ErrMalformed, err)
	}

	doc, err := value.FromNative(native)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: yaml: %w", content.ErrMalformed, err)
	}

	return doc, nil
}
