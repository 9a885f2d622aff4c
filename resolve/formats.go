package resolve

import (
	"github.com/0xalexb/confd/content"
	hclparser "github.com/0xalexb/confd/content/hcl"
	jsonparser "github.com/0xalexb/confd/content/json"
	textparser "github.com/0xalexb/confd/content/text"
	tomlparser "github.com/0xalexb/confd/content/toml"
	yamlparser "github.com/0xalexb/confd/content/yaml"
)

// DefaultFormats lists the built-in formats. The order is also the order in which
// extensions are probed for a segment without one.
func DefaultFormats() []content.Format {
	yaml := yamlparser.NewParser()
	text := textparser.NewParser()

	return []content.Format{
		{Extension: "json", Parser: jsonparser.NewParser()},
		{Extension: "yaml", Parser: yaml},
		{Extension: "yml", Parser: yaml},
		{Extension: "toml", Parser: tomlparser.NewParser()},
		{Extension: "hcl", Parser: hclparser.NewParser()},
		{Extension: "txt", Parser: text},
		{Extension: "md", Parser: text},
	}
}

// DefaultRegistry builds a registry holding DefaultFormats.
func DefaultRegistry() (*content.Registry, error) {
	return content.NewRegistry(DefaultFormats()...)
}
