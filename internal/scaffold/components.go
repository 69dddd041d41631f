package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVendor is returned when no framework component is registered
// for a vendor.
var ErrUnknownVendor = errors.New("unknown vendor")

// mcuFeature in a feature list is replaced with the configured MCU.
const mcuFeature = "{mcu}"

// Component is a framework crate a generated project depends on.
type Component struct {
	Name     string
	Features []string
}

var defaultVendors = map[string]Component{
	"st": {
		Name:     "embassy-stm32",
		Features: []string{"nightly", "defmt", "time-driver-any", mcuFeature, "memory-x", "exti"},
	},
	"nrf": {
		Name:     "embassy-nrf",
		Features: []string{"nightly", "defmt", mcuFeature, "time-driver-rtc1", "gpiote"},
	},
	"rp": {
		Name:     "embassy-rp",
		Features: []string{"defmt", "nightly", "time-driver"},
	},
}

var defaultComponents = []Component{
	{Name: "embassy-executor", Features: []string{"nightly", "arch-cortex-m", "executor-thread", "integrated-timers"}},
	{Name: "embassy-time", Features: []string{"defmt", "defmt-timestamp-uptime", "tick-hz-32_768"}},
	{Name: "embassy-sync", Features: []string{"defmt"}},
	{Name: "embassy-futures"},
}

// vendorComponent returns the platform crate for vendor.
func (b *Builder) vendorComponent(vendor string) (Component, error) {
	c, ok := b.vendors[strings.ToLower(vendor)]
	if !ok {
		return Component{}, fmt.Errorf("%w: %q", ErrUnknownVendor, vendor)
	}
	return c, nil
}

// components returns the vendor crate followed by the default crates.
func (b *Builder) components(vendor string) ([]Component, error) {
	vc, err := b.vendorComponent(vendor)
	if err != nil {
		return nil, err
	}
	out := make([]Component, 0, len(b.defaults)+1)
	out = append(out, vc)
	return append(out, b.defaults...), nil
}

// crateIdent turns a crate name into the identifier used in Rust source.
func crateIdent(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
