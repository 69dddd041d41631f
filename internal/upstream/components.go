package upstream

import (
	"fmt"
	"path"
	"strings"
)

// pathOverrides lists crates whose manifest does not live at <name>/.
var pathOverrides = map[string]string{
	"embassy-boot-nrf":   "embassy-boot/nrf",
	"embassy-boot-rp":    "embassy-boot/rp",
	"embassy-boot-stm32": "embassy-boot/stm32",
}

// ComponentPath returns the repository path of a crate's Cargo.toml.
func ComponentPath(name string) (string, error) {
	if dir, ok := pathOverrides[name]; ok {
		return path.Join(dir, "Cargo.toml"), nil
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownComponent)
	}
	return path.Join(name, "Cargo.toml"), nil
}
