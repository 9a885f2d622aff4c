// Package content turns raw file bytes into value.Value documents.
//
// Formats are selected by file extension through an explicit Registry built at
// startup. Extensions are never guessed from file content: a filename whose
// extension is not registered fails with ErrUnsupportedFormat.
//
// Parser implementations live in subpackages (json, yaml, toml, hcl, text). Each
// one is a pure function of its input and reports syntax errors by wrapping
// ErrMalformed.
package content
