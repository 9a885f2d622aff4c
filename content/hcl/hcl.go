// Package hcl parses HCL native-syntax documents into value.Value using github.com/hashicorp/hcl/v2.
//
// Attributes become mapping entries. A block becomes a nested mapping keyed by its type
// and then by each of its labels, so
//
//	service "web" {
//	  port = 8080
//	}
//
// is addressed as service/web/port. Expressions are evaluated without variables or
// functions; a reference to either is a parse failure.
package hcl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/value"
)

// sourceName labels diagnostics; the parser never sees the real file path.
const sourceName = "document.hcl"

// ErrDuplicateKey is wrapped when two attributes or blocks resolve to the same key path.
var ErrDuplicateKey = errors.New("duplicate key")

var errUnexpectedBody = errors.New("unexpected body type")

var errUnknownValue = errors.New("value is not known without evaluation context")

// Parser implements content.Parser for HCL.
type Parser struct{}

// NewParser creates a new HCL parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses data as an HCL body.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, sourceName)
	if diags.HasErrors() {
		return value.Value{}, fmt.Errorf("%w: hcl: %w", content.ErrMalformed, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: hcl: %w %T", content.ErrMalformed, errUnexpectedBody, file.Body)
	}

	native, err := bodyToNative(body)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: hcl: %w", content.ErrMalformed, err)
	}

	doc, err := value.FromNative(native)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: hcl: %w", content.ErrMalformed, err)
	}

	return doc, nil
}

func bodyToNative(body *hclsyntax.Body) (map[string]any, error) {
	out := make(map[string]any, len(body.Attributes)+len(body.Blocks))

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute %q: %w", name, diags)
		}

		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}

		out[name] = native
	}

	for _, block := range body.Blocks {
		nested, err := bodyToNative(block.Body)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", block.Type, err)
		}

		err = insertBlock(out, append([]string{block.Type}, block.Labels...), nested)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// insertBlock stores nested under the key path, creating intermediate mappings.
func insertBlock(out map[string]any, path []string, nested map[string]any) error {
	current := out

	for _, key := range path[:len(path)-1] {
		existing, ok := current[key]
		if !ok {
			next := make(map[string]any)
			current[key] = next
			current = next

			continue
		}

		next, isMap := existing.(map[string]any)
		if !isMap {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}

		current = next
	}

	last := path[len(path)-1]
	if _, exists := current[last]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, last)
	}

	current[last] = nested

	return nil
}

func ctyToNative(val cty.Value) (any, error) {
	if !val.IsKnown() {
		return nil, errUnknownValue
	}

	if val.IsNull() {
		return nil, nil //nolint:nilnil // null is a valid document value
	}

	valType := val.Type()

	switch {
	case valType == cty.String:
		return val.AsString(), nil
	case valType == cty.Number:
		f, _ := val.AsBigFloat().Float64()

		return f, nil
	case valType == cty.Bool:
		return val.True(), nil
	case valType.IsObjectType() || valType.IsMapType():
		out := make(map[string]any, val.LengthInt())

		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()

			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}

			out[key.AsString()] = native
		}

		return out, nil
	case valType.IsTupleType() || valType.IsListType() || valType.IsSetType():
		out := make([]any, 0, val.LengthInt())

		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}

			out = append(out, native)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", value.ErrUnsupportedType, valType.FriendlyName())
	}
}
