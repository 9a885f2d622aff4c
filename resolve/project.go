package resolve

import (
	"iter"
	"slices"

	"github.com/0xalexb/confd/value"
)

// Project follows fields through nested mappings starting at doc.
// An empty chain yields doc itself.
func Project(doc value.Value, fields []string) (value.Value, bool) {
	return ProjectSeq(doc, slices.Values(fields))
}

// ProjectSeq is Project over a lazily produced chain. It stops pulling fields at
// the first key that is missing or applied to a non-mapping value.
func ProjectSeq(doc value.Value, fields iter.Seq[string]) (value.Value, bool) {
	current := doc

	for field := range fields {
		next, ok := current.Lookup(field)
		if !ok {
			return value.Value{}, false
		}

		current = next
	}

	return current, true
}
