package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/embassy-tools/embassy-cli/internal/materialize"
	"github.com/embassy-tools/embassy-cli/internal/postprocess"
	"github.com/embassy-tools/embassy-cli/internal/tree"
)

const toolchainFile = "rust-toolchain.toml"

// GenerateOptions controls where and how a project is written.
type GenerateOptions struct {
	BaseDir   string   // parent of the project directory; "" means "."
	Formatter []string // formatter argv run in the project root; nil skips it
}

// Result holds the outcome of a generation.
type Result struct {
	Root      string   // project directory
	Files     []string // written files, slash-separated and relative to Root
	Manifests []string // TOML manifests that were normalized
	Metadata  *Metadata
}

// Generate builds the project described by cfg, writes it below
// opts.BaseDir and post-processes it. A pre-existing project directory is an
// error. A failure after writing started leaves the partial tree in place.
func (b *Builder) Generate(ctx context.Context, cfg GeneratorConfig, opts GenerateOptions) (*Result, error) {
	root, md, err := b.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}

	base := opts.BaseDir
	if base == "" {
		base = "."
	}
	instructions := tree.Flatten(root, base)
	if err := materialize.Apply(instructions); err != nil {
		return nil, err
	}

	result := &Result{
		Root:      filepath.Join(base, cfg.Name),
		Manifests: append(tree.Files(root, "Cargo.toml"), toolchainFile),
		Metadata:  md,
	}
	for _, in := range instructions {
		if in.Kind != tree.WriteFile {
			continue
		}
		rel, err := filepath.Rel(result.Root, in.Path)
		if err != nil {
			return nil, fmt.Errorf("relativizing %s: %w", in.Path, err)
		}
		result.Files = append(result.Files, filepath.ToSlash(rel))
	}

	if err := postprocess.Run(ctx, result.Root, result.Manifests, opts.Formatter); err != nil {
		return nil, err
	}
	return result, nil
}
