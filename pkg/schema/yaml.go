package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// blockSpec is the YAML form of a Descriptor. Build and OnEnter hooks have no
// YAML form; Children covers what catalogs need.
type blockSpec struct {
	Tag          string   `yaml:"tag"`
	ValidParents []string `yaml:"valid_parents,omitempty,flow"`
	RootAllowed  bool     `yaml:"root_allowed,omitempty"`
	Insertable   bool     `yaml:"insertable,omitempty"`
	Editable     bool     `yaml:"editable,omitempty"`
	Build        []string `yaml:"build,omitempty,flow"`
	EnterCreates string   `yaml:"enter_creates,omitempty"`
}

type catalogFile struct {
	Blocks []blockSpec `yaml:"blocks"`
}

// LoadCatalog reads a YAML catalog and returns it as a registry.
func LoadCatalog(r io.Reader) (*Registry, error) {
	var cf catalogFile
	if err := yaml.NewDecoder(r).Decode(&cf); err != nil {
		if err == io.EOF {
			return nil, &ConfigError{Err: ErrEmptyCatalog}
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	descs := make([]*Descriptor, 0, len(cf.Blocks))
	for _, b := range cf.Blocks {
		descs = append(descs, &Descriptor{
			TagName:        b.Tag,
			ValidParents:   b.ValidParents,
			RootAllowed:    b.RootAllowed,
			Insertable:     b.Insertable,
			Editable:       b.Editable,
			Children:       b.Build,
			EnterCreateTag: b.EnterCreates,
		})
	}
	return NewRegistry(descs...)
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// EncodeCatalog writes reg as YAML. Descriptors carrying a Go build hook
// are written with their Children list only.
func EncodeCatalog(w io.Writer, reg *Registry) error {
	cf := catalogFile{}
	for _, d := range reg.Descriptors() {
		cf.Blocks = append(cf.Blocks, blockSpec{
			Tag:          d.TagName,
			ValidParents: d.ValidParents,
			RootAllowed:  d.RootAllowed,
			Insertable:   d.Insertable,
			Editable:     d.Editable,
			Build:        d.Children,
			EnterCreates: d.EnterCreateTag,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cf); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}
