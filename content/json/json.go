// Package json parses JSON documents into value.Value.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/value"
)

// errTrailingData is wrapped when valid JSON is followed by more content.
var errTrailingData = errors.New("unexpected data after top-level value")

// Parser implements content.Parser for JSON. Numbers are decoded as json.Number
// so no precision is lost before conversion.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes exactly one JSON value from data.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var native any

	err := decoder.Decode(&native)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: json: %w", content.ErrMalformed, err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return value.Value{}, fmt.Errorf("%w: json: %w", content.ErrMalformed, errTrailingData)
	}

	doc, err := value.FromNative(native)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: json: %w", content.ErrMalformed, err)
	}

	return doc, nil
}
