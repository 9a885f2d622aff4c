// Package text provides the plain-text parser: the whole file becomes one String value.
package text

import "github.com/0xalexb/confd/value"

// Parser implements content.Parser without any structural interpretation.
type Parser struct{}

// NewParser creates a new plain-text parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns data unchanged as a String value. It never fails.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	return value.StringValue(string(data)), nil
}
