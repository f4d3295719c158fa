package generator

import (
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/fievar/fieverrors"
)

// Config is the YAML generation manifest. Example:
//
//	dir: ./models
//	output: zz_generated_fievar.go
//	strict: true
//	types:
//	  - name: Token
//	    kind: fields
//	  - name: Color
//	    kind: variants
//	    accessor: colorNames
type Config struct {
	// Dir is the package directory to scan, relative to the manifest's
	// working directory.
	Dir string `yaml:"dir,omitempty"`
	// Output is the generated file name.
	Output string `yaml:"output,omitempty"`
	// Strict fails generation on any warning.
	Strict bool `yaml:"strict,omitempty"`
	// Types lists the types to generate accessors for.
	Types []ConfigType `yaml:"types"`
}

// ConfigType is one manifest entry.
type ConfigType struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind,omitempty"`
	Accessor string `yaml:"accessor,omitempty"`
}

// LoadConfig reads and parses a YAML manifest.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &fieverrors.ConfigError{
			Field:   "config",
			Value:   path,
			Message: "cannot read manifest",
			Cause:   err,
		}
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML manifest bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &fieverrors.ConfigError{
			Field:   "config",
			Message: "cannot parse manifest",
			Cause:   err,
		}
	}
	return &cfg, nil
}

// TypeSpecs converts the manifest entries into generator type specs,
// validating kinds.
func (c *Config) TypeSpecs() ([]TypeSpec, error) {
	if len(c.Types) == 0 {
		return nil, &fieverrors.ConfigError{
			Field:   "types",
			Message: "at least one type is required",
		}
	}
	specs := make([]TypeSpec, 0, len(c.Types))
	for _, t := range c.Types {
		if t.Name == "" {
			return nil, &fieverrors.ConfigError{
				Field:   "types",
				Message: "every entry needs a name",
			}
		}
		kind, err := ParseKind(t.Kind)
		if err != nil {
			return nil, err
		}
		specs = append(specs, TypeSpec{Name: t.Name, Kind: kind, Accessor: t.Accessor})
	}
	return specs, nil
}

// apply copies the manifest onto a generator.
func (c *Config) apply(g *Generator) error {
	specs, err := c.TypeSpecs()
	if err != nil {
		return err
	}
	g.Types = append(g.Types, specs...)
	if c.Dir != "" {
		g.Dir = c.Dir
	}
	if c.Output != "" {
		g.OutputFile = c.Output
	}
	if c.Strict {
		g.StrictMode = true
	}
	return nil
}
