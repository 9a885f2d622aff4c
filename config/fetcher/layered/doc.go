// Package layered provides a DataFetcher that merges settings from several sources.
//
// Sources are merged with github.com/knadh/koanf/v2, lowest priority first:
//
//  1. a base YAML document (usually a file fetcher),
//  2. environment variables carrying the prefix (CONFD_ by default),
//  3. explicit overrides, such as command-line flags.
//
// The merged map is emitted as YAML so it can go through the same config.Parser
// as a plain settings file.
package layered
