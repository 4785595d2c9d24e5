package catalog

import "gopkg.in/yaml.v3"

// catalogFile is the on-disk shape of one catalog.
type catalogFile struct {
	Name       string         `yaml:"name"`
	Title      string         `yaml:"title"`
	Section    string         `yaml:"section"`
	Columns    []string       `yaml:"columns"`
	Dimensions []dimensionDTO `yaml:"dimensions"`
	// Records stay as nodes so field order survives decoding.
	Records []yaml.Node `yaml:"records"`
}

type dimensionDTO struct {
	Key     string   `yaml:"key"`
	Field   string   `yaml:"field"`
	Kind    string   `yaml:"kind"`
	Match   string   `yaml:"match"`
	Options []string `yaml:"options"`
}

// formFile is the on-disk shape of the self-assessment form.
type formFile struct {
	Title         string                 `yaml:"title"`
	DefaultRating int                    `yaml:"default_rating"`
	Skills        []string               `yaml:"skills"`
	Tiers         map[string]guidanceDTO `yaml:"tiers"`
}

type guidanceDTO struct {
	Heading string `yaml:"heading"`
	Advice  string `yaml:"advice"`
}
