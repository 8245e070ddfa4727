package botpool

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/community-bots/internal/domain"
	"github.com/heartmarshall/community-bots/pkg/randsrc"
)

//go:embed personas.yaml
var personasYAML []byte

// Catalog holds the name parts, cities and bio templates personas are drawn from.
type Catalog struct {
	FirstNames struct {
		Male   []string `yaml:"male"`
		Female []string `yaml:"female"`
	} `yaml:"first_names"`
	Surnames []string `yaml:"surnames"`
	Cities   []string `yaml:"cities"`
	Bios     []string `yaml:"bios"`
}

// DefaultCatalog parses the embedded persona catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(personasYAML)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse persona catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []domain.FieldError
	for _, f := range []struct {
		name string
		list []string
	}{
		{"first_names.male", c.FirstNames.Male},
		{"first_names.female", c.FirstNames.Female},
		{"surnames", c.Surnames},
		{"cities", c.Cities},
		{"bios", c.Bios},
	} {
		if len(f.list) == 0 {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must not be empty"})
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("persona catalog: %w", domain.NewValidationErrors(errs))
	}
	return nil
}

// persona is a freshly drawn identity that has not been persisted yet.
type persona struct {
	Gender      domain.Gender
	DisplayName string
	City        string
	Bio         string
}

// draw picks gender, names, city and bio uniformly at random.
func (c *Catalog) draw(src randsrc.Source) persona {
	gender := domain.GenderMale
	firstNames := c.FirstNames.Male
	if src.Intn(2) == 1 {
		gender = domain.GenderFemale
		firstNames = c.FirstNames.Female
	}

	first := randsrc.Pick(src, firstNames)
	last := randsrc.Pick(src, c.Surnames)
	city := randsrc.Pick(src, c.Cities)
	bio := strings.ReplaceAll(randsrc.Pick(src, c.Bios), "{city}", city)

	return persona{
		Gender:      gender,
		DisplayName: first + " " + last,
		City:        city,
		Bio:         bio,
	}
}
