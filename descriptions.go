package main

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed descriptions.yaml
var descriptionsYAML []byte

// descriptionCatalog holds the localized tool descriptions shipped with the
// binary. Lookups fall back to English so a partial translation never leaves
// a tool undescribed.
type descriptionCatalog struct {
	lang  string
	langs map[string]map[string]string
}

func loadDescriptions(lang string) (*descriptionCatalog, error) {
	var langs map[string]map[string]string
	if err := yaml.Unmarshal(descriptionsYAML, &langs); err != nil {
		return nil, fmt.Errorf("parsing tool descriptions: %w", err)
	}
	if _, ok := langs["en"]; !ok {
		return nil, fmt.Errorf("tool descriptions missing the en catalog")
	}
	if _, ok := langs[lang]; !ok {
		lang = "en"
	}
	return &descriptionCatalog{lang: lang, langs: langs}, nil
}

func (c *descriptionCatalog) text(tool string) string {
	if d, ok := c.langs[c.lang][tool]; ok && d != "" {
		return d
	}
	return c.langs["en"][tool]
}
