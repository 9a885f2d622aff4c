// Package yaml implements config.Parser for YAML settings files.
//
// It uses github.com/goccy/go-yaml and its PathString support to decode only
// a section of a document. Sections are addressed with colon-separated keys:
//
//	parser := yaml.NewParser()
//	var settings confd.Settings
//	err := parser.Parse(data, &settings, "confd")
//
// An empty path decodes the whole document; "confd:limits" becomes "$.confd.limits".
package yaml
