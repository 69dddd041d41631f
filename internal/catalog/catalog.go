package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var embedded []byte

var (
	// ErrInvalid reports a catalog document that fails schema validation.
	ErrInvalid = errors.New("invalid catalog")
	// ErrUnknownVendor reports a vendor that is not in the catalog.
	ErrUnknownVendor = errors.New("unknown vendor")
	// ErrUnknownMCU reports an MCU that is not listed for its vendor.
	ErrUnknownMCU = errors.New("unknown MCU")
	// ErrNoTarget reports an MCU that no flavor matches.
	ErrNoTarget = errors.New("no target for MCU")
)

// Vendor lists the MCUs supported for one hardware vendor.
type Vendor struct {
	Name    string   `yaml:"name" json:"name"`
	MCUList []string `yaml:"mcu_list" json:"mcus"`
}

// Flavor maps MCUs matching Regex to a compiler target triple.
type Flavor struct {
	Regex  string `yaml:"regex"`
	Target string `yaml:"target"`

	re *regexp.Regexp
}

// Catalog is the parsed vendor/MCU table. It is not modified after Parse
// returns, so one value can be shared freely.
type Catalog struct {
	vendors []Vendor
	flavors []Flavor
}

type document struct {
	Vendors []Vendor `yaml:"vendors"`
	Flavors []Flavor `yaml:"flavors"`
}

// Load parses the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse validates data against the catalog schema and compiles its flavors.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	for i := range doc.Flavors {
		re, err := regexp.Compile(doc.Flavors[i].Regex)
		if err != nil {
			return nil, fmt.Errorf("%w: flavor %d: %w", ErrInvalid, i, err)
		}
		doc.Flavors[i].re = re
	}

	return &Catalog{vendors: doc.Vendors, flavors: doc.Flavors}, nil
}

// Vendors returns the vendor names in catalog order.
func (c *Catalog) Vendors() []string {
	names := make([]string, len(c.vendors))
	for i, v := range c.vendors {
		names[i] = v.Name
	}
	return names
}

// MCUs returns the MCUs supported for vendor.
func (c *Catalog) MCUs(vendor string) ([]string, error) {
	for _, v := range c.vendors {
		if v.Name == vendor {
			return slices.Clone(v.MCUList), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownVendor, vendor)
}

// Target returns the target triple of the first flavor matching mcu.
func (c *Catalog) Target(mcu string) (string, error) {
	for _, f := range c.flavors {
		if f.re.MatchString(mcu) {
			return f.Target, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoTarget, mcu)
}

// Validate checks that vendor is known and lists mcu.
func (c *Catalog) Validate(vendor, mcu string) error {
	mcus, err := c.MCUs(vendor)
	if err != nil {
		return err
	}
	if !slices.Contains(mcus, mcu) {
		return fmt.Errorf("%w: %s (vendor %s)", ErrUnknownMCU, mcu, vendor)
	}
	return nil
}
