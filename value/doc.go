// Package value defines the structured document model produced by content parsers.
//
// A Value is one of Null, Bool, Number, String, Sequence or Mapping. Values are
// immutable once built: constructors and accessors copy their collections, so a
// parsed document can be shared between goroutines without locking.
//
// Only the Mapping variant supports key lookup. Calling Lookup on any other
// variant reports false instead of failing, which keeps projection into scalars
// and sequences an ordinary miss.
package value
