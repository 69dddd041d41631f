package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/embassy-tools/embassy-cli/internal/tree"
)

const (
	defaultGitURL  = "https://github.com/embassy-rs/embassy"
	defaultAppDir  = "app"
	defaultLibName = "my_lib"
)

// Builder turns a GeneratorConfig into a fully rendered project tree.
type Builder struct {
	resolver Resolver
	vendors  map[string]Component
	defaults []Component
	gitURL   string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithVendors replaces the vendor to platform crate table. Vendor names
// match case-insensitively.
func WithVendors(vendors map[string]Component) BuilderOption {
	return func(b *Builder) {
		b.vendors = make(map[string]Component, len(vendors))
		for name, c := range vendors {
			b.vendors[strings.ToLower(name)] = c
		}
	}
}

// WithDefaultComponents replaces the crates every project depends on.
func WithDefaultComponents(components []Component) BuilderOption {
	return func(b *Builder) {
		b.defaults = slices.Clone(components)
	}
}

// WithGitURL sets the repository [patch.crates-io] entries point at.
func WithGitURL(url string) BuilderOption {
	return func(b *Builder) {
		b.gitURL = url
	}
}

// NewBuilder returns a Builder that resolves metadata through r.
func NewBuilder(r Resolver, opts ...BuilderOption) *Builder {
	b := &Builder{
		resolver: r,
		vendors:  defaultVendors,
		defaults: defaultComponents,
		gitURL:   defaultGitURL,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resolve fetches the commit (unless cfg.NoPin), the toolchain channel and
// every required crate version, one request at a time.
func (b *Builder) Resolve(ctx context.Context, cfg GeneratorConfig) (*Metadata, error) {
	components, err := b.components(cfg.Vendor)
	if err != nil {
		return nil, err
	}

	md := &Metadata{}
	if !cfg.NoPin {
		md.Commit, err = b.resolver.LatestCommit(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving latest commit: %w", err)
		}
		slog.Debug("resolved commit", "sha", md.Commit)
	}

	md.Channel, err = b.resolver.ToolchainChannel(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving toolchain channel: %w", err)
	}
	slog.Debug("resolved toolchain", "channel", md.Channel)

	for _, c := range components {
		v, err := b.resolver.ComponentVersion(ctx, c.Name)
		if err != nil {
			return nil, fmt.Errorf("resolving %s version: %w", c.Name, err)
		}
		slog.Debug("resolved component", "name", c.Name, "version", v)
		md.Versions = append(md.Versions, ComponentVersion{Name: c.Name, Version: v})
	}

	return md, nil
}

// Build resolves metadata for cfg and renders the project tree. Any failure
// aborts before a tree is returned.
func (b *Builder) Build(ctx context.Context, cfg GeneratorConfig) (*tree.Dir, *Metadata, error) {
	md, err := b.Resolve(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	root, err := b.Render(cfg, md)
	if err != nil {
		return nil, nil, err
	}
	return root, md, nil
}
