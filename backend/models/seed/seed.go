// Package seed provides the default country list and a YAML loader for
// user-supplied country files.
package seed

import (
	_ "embed"
	"os"

	"salesrep-roster/backend/models"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var defaultCountries []byte

// File is the on-disk shape of a country list
type File struct {
	Countries []models.Country `yaml:"countries"`
}

// Default returns the built-in country list
func Default() ([]models.Country, error) {
	return Parse(defaultCountries)
}

// Load reads a country list from a YAML file
func Load(path string) ([]models.Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading country file %s", path)
	}
	countries, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "country file %s", path)
	}
	return countries, nil
}

// Parse decodes a country list. Entries missing a name or region are rejected.
func Parse(data []byte) ([]models.Country, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding country list")
	}
	for i, c := range f.Countries {
		if c.Name == "" || c.Region == "" {
			return nil, errors.Errorf("entry %d: name and region are required", i)
		}
	}
	return f.Countries, nil
}
