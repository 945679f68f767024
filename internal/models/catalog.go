package models

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/efuller/md-forms/internal/validator"
)

//go:embed data/catalog.yaml
var catalogFile embed.FS

type CatalogModelInterface interface {
	Species() []string
	Search(term, species string) []*Animal
}

// Animal is an entry in the search catalog.
type Animal struct {
	Name        string `yaml:"name"`
	Breed       string `yaml:"breed"`
	Description string `yaml:"description"`
	Species     string `yaml:"-"`
}

type catalogDocument struct {
	Species []struct {
		Name    string    `yaml:"name"`
		Animals []*Animal `yaml:"animals"`
	} `yaml:"species"`
}

// CatalogModel is a read-only, in-memory catalog. It is safe for concurrent use.
type CatalogModel struct {
	species []string
	animals map[string][]*Animal
}

// NewCatalogModel loads the catalog embedded in the binary.
func NewCatalogModel() (*CatalogModel, error) {
	data, err := catalogFile.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, err
	}

	return ParseCatalog(data)
}

// ParseCatalog builds a catalog from a YAML document.
func ParseCatalog(data []byte) (*CatalogModel, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	m := &CatalogModel{animals: make(map[string][]*Animal)}

	for _, s := range doc.Species {
		if _, ok := m.animals[s.Name]; !ok {
			m.species = append(m.species, s.Name)
		}
		for _, a := range s.Animals {
			a.Species = s.Name
			m.animals[s.Name] = append(m.animals[s.Name], a)
		}
	}

	return m, nil
}

// Species returns the species names in catalog order.
func (m *CatalogModel) Species() []string {
	return append([]string(nil), m.species...)
}

// Search returns the animals of the given species whose name, breed or description
// contains every word of term.
func (m *CatalogModel) Search(term, species string) []*Animal {
	words := strings.Fields(term)

	var results []*Animal

	for _, a := range m.animals[species] {
		if validator.Contains(a.Name+" "+a.Breed+" "+a.Description, words) {
			results = append(results, a)
		}
	}

	return results
}
