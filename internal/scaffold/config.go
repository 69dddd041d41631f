package scaffold

// GeneratorConfig describes the project to generate. The CLI validates the
// vendor/MCU pair against the catalog before building one.
type GeneratorConfig struct {
	Name   string // Cargo package name and root directory name
	Vendor string // e.g., "st"
	MCU    string // e.g., "stm32f401re"
	Target string // e.g., "thumbv7em-none-eabihf"

	// NoPin skips resolving the latest upstream commit, leaving the
	// [patch.crates-io] entries unpinned.
	NoPin bool

	// Workspace selects the crates/app + crates/<lib> layout instead of a
	// single package at the root.
	Workspace bool
}
