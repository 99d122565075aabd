package seed

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
)

const catalogEnv = "SEED_CATALOG_YAML"

//go:embed catalog.yaml
var catalogFS embed.FS

type StainSeed struct {
	Name        string              `yaml:"name"`
	DisplayName string              `yaml:"displayName"`
	Color       string              `yaml:"color"`
	Category    types.StainCategory `yaml:"category"`
	Description string              `yaml:"description"`
}

type MaterialSeed struct {
	Name        string             `yaml:"name"`
	DisplayName string             `yaml:"displayName"`
	Type        types.MaterialType `yaml:"type"`
	CareNotes   string             `yaml:"careNotes"`
	CommonUses  string             `yaml:"commonUses"`
	Description string             `yaml:"description"`
}

type GuideSeed struct {
	StainName     string              `yaml:"stainName"`
	MaterialName  string              `yaml:"materialName"`
	PreTreatment  string              `yaml:"preTreatment"`
	Products      []string            `yaml:"products"`
	WashMethod    string              `yaml:"washMethod"`
	Warnings      []string            `yaml:"warnings"`
	Effectiveness types.Effectiveness `yaml:"effectiveness"`
}

type Catalog struct {
	Stains    []StainSeed    `yaml:"stains"`
	Materials []MaterialSeed `yaml:"materials"`
	Guides    []GuideSeed    `yaml:"guides"`
}

// Load reads the catalog from SEED_CATALOG_YAML when set, otherwise the embedded copy.
func Load() (*Catalog, error) {
	data, err := readCatalog()
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func readCatalog() ([]byte, error) {
	if path := strings.TrimSpace(os.Getenv(catalogEnv)); path != "" {
		return os.ReadFile(path)
	}
	return catalogFS.ReadFile("catalog.yaml")
}

func (c *Catalog) validate() error {
	var errs []error
	seen := map[string]bool{}
	for _, s := range c.Stains {
		switch {
		case s.Name == "" || s.DisplayName == "":
			errs = append(errs, fmt.Errorf("stain %q: name and displayName are required", s.Name))
		case !s.Category.Valid():
			errs = append(errs, fmt.Errorf("stain %q: unknown category %q", s.Name, s.Category))
		case seen["s:"+s.Name]:
			errs = append(errs, fmt.Errorf("stain %q: duplicate", s.Name))
		}
		seen["s:"+s.Name] = true
	}
	for _, m := range c.Materials {
		switch {
		case m.Name == "" || m.DisplayName == "":
			errs = append(errs, fmt.Errorf("material %q: name and displayName are required", m.Name))
		case !m.Type.Valid():
			errs = append(errs, fmt.Errorf("material %q: unknown type %q", m.Name, m.Type))
		case seen["m:"+m.Name]:
			errs = append(errs, fmt.Errorf("material %q: duplicate", m.Name))
		}
		seen["m:"+m.Name] = true
	}
	for _, g := range c.Guides {
		if !seen["s:"+g.StainName] || !seen["m:"+g.MaterialName] {
			errs = append(errs, fmt.Errorf("guide %s/%s: references an unknown stain or material", g.StainName, g.MaterialName))
		}
	}
	return errors.Join(errs...)
}
