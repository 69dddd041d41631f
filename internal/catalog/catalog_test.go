package catalog

import (
	"errors"
	"testing"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return c
}

func TestLoadEmbedded(t *testing.T) {
	c := mustLoad(t)

	vendors := c.Vendors()
	want := []string{"st", "nrf", "rp"}
	if len(vendors) != len(want) {
		t.Fatalf("Vendors() = %v, want %v", vendors, want)
	}
	for i := range want {
		if vendors[i] != want[i] {
			t.Errorf("Vendors()[%d] = %q, want %q", i, vendors[i], want[i])
		}
	}
}

func TestEveryMCUHasTarget(t *testing.T) {
	c := mustLoad(t)
	for _, vendor := range c.Vendors() {
		mcus, err := c.MCUs(vendor)
		if err != nil {
			t.Fatalf("MCUs(%q) error: %v", vendor, err)
		}
		for _, mcu := range mcus {
			if _, err := c.Target(mcu); err != nil {
				t.Errorf("Target(%q) error: %v", mcu, err)
			}
		}
	}
}

func TestTarget(t *testing.T) {
	c := mustLoad(t)
	tests := []struct {
		mcu  string
		want string
	}{
		{"stm32f030f4", "thumbv6m-none-eabi"},
		{"stm32f103c8", "thumbv7m-none-eabi"},
		{"stm32f401re", "thumbv7em-none-eabihf"},
		{"stm32h743zi", "thumbv7em-none-eabihf"},
		{"stm32u585ai", "thumbv8m.main-none-eabihf"},
		{"nrf52810", "thumbv7em-none-eabi"},
		{"nrf52840", "thumbv7em-none-eabihf"},
		{"nrf9160-s", "thumbv8m.main-none-eabihf"},
		{"rp2040", "thumbv6m-none-eabi"},
	}

	for _, tt := range tests {
		t.Run(tt.mcu, func(t *testing.T) {
			got, err := c.Target(tt.mcu)
			if err != nil {
				t.Fatalf("Target(%q) error: %v", tt.mcu, err)
			}
			if got != tt.want {
				t.Errorf("Target(%q) = %q, want %q", tt.mcu, got, tt.want)
			}
		})
	}

	if _, err := c.Target("esp32c3"); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Target(esp32c3) error = %v, want ErrNoTarget", err)
	}
}

func TestValidate(t *testing.T) {
	c := mustLoad(t)

	if err := c.Validate("st", "stm32f401re"); err != nil {
		t.Errorf("Validate(st, stm32f401re) error: %v", err)
	}
	if err := c.Validate("esp", "esp32"); !errors.Is(err, ErrUnknownVendor) {
		t.Errorf("unknown vendor: error = %v, want ErrUnknownVendor", err)
	}
	if err := c.Validate("nrf", "stm32f401re"); !errors.Is(err, ErrUnknownMCU) {
		t.Errorf("mismatched MCU: error = %v, want ErrUnknownMCU", err)
	}
}

func TestMCUsReturnsCopy(t *testing.T) {
	c := mustLoad(t)
	mcus, err := c.MCUs("rp")
	if err != nil {
		t.Fatalf("MCUs(rp) error: %v", err)
	}
	mcus[0] = "mutated"

	again, _ := c.MCUs("rp")
	if again[0] != "rp2040" {
		t.Errorf("catalog was mutated through MCUs() result: %v", again)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing flavors", "vendors:\n  - name: st\n    mcu_list: [a]\n"},
		{"empty mcu list", "vendors:\n  - name: st\n    mcu_list: []\nflavors:\n  - regex: a\n    target: t\n"},
		{"bad vendor name", "vendors:\n  - name: ST Micro\n    mcu_list: [a]\nflavors:\n  - regex: a\n    target: t\n"},
		{"unknown key", "vendors:\n  - name: st\n    mcu_list: [a]\n    extra: 1\nflavors:\n  - regex: a\n    target: t\n"},
		{"bad regex", "vendors:\n  - name: st\n    mcu_list: [a]\nflavors:\n  - regex: '('\n    target: t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("vendors: [")); err == nil {
		t.Error("Parse() expected error for malformed YAML")
	}
}
