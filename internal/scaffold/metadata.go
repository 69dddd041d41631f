package scaffold

import "context"

// Resolver supplies the upstream metadata a project is rendered from.
// *upstream.Client implements it.
type Resolver interface {
	LatestCommit(ctx context.Context) (string, error)
	ToolchainChannel(ctx context.Context) (string, error)
	ComponentVersion(ctx context.Context, name string) (string, error)
}

// ComponentVersion pairs a framework crate with its resolved version.
type ComponentVersion struct {
	Name    string
	Version string
}

// Metadata is everything resolved from upstream for one generation.
// Commit is empty when pinning was disabled.
type Metadata struct {
	Commit   string
	Channel  string
	Versions []ComponentVersion
}

// Pinned reports whether manifests reference a specific upstream commit.
func (m *Metadata) Pinned() bool {
	return m.Commit != ""
}

// Version returns the resolved version of the named crate.
func (m *Metadata) Version(name string) (string, bool) {
	for _, cv := range m.Versions {
		if cv.Name == name {
			return cv.Version, true
		}
	}
	return "", false
}
