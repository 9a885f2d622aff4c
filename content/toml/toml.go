// Package toml parses TOML documents into value.Value using github.com/BurntSushi/toml.
package toml

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/value"
)

// Parser implements content.Parser for TOML. Date and time values become strings
// in their TOML text form.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data as a TOML table.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	table := make(map[string]any)

	err := toml.Unmarshal(data, &table)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: toml: %w", content.ErrMalformed, err)
	}

	doc, err := value.FromNative(table)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: toml: %w", content.ErrMalformed, err)
	}

	return doc, nil
}
