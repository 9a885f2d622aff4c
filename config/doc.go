// Package config loads typed settings through small interfaces:
//   - Parser: decodes raw data into a struct, optionally a section of it
//   - DataFetcher: retrieves raw data (a file, merged environment layers, ...)
//   - Defaulter: fills zero values after decoding
//   - Validator: rejects unusable settings
//
// Provider chains them in that order:
//
//	provider := config.Provider(&confd.Settings{}, "")
//	settings, err := provider(yamlparser.NewParser(), layered.NewFetcher())
//
// Sections are addressed with colon-separated keys ("confd:limits"); an empty
// path decodes the whole document.
package config
