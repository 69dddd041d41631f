package postprocess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	toml "github.com/pelletier/go-toml"
)

// ErrManifest reports a generated manifest that does not parse as TOML.
var ErrManifest = errors.New("invalid manifest")

var newlineRun = regexp.MustCompile(`\n{2,}`)

// CollapseNewlines replaces every run of two or more newlines with one.
func CollapseNewlines(s string) string {
	return newlineRun.ReplaceAllString(s, "\n")
}

// RunFormatter runs argv with dir as its working directory. The outcome is
// logged and otherwise ignored; an empty argv does nothing.
func RunFormatter(ctx context.Context, dir string, argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	slog.Debug("formatter finished", "cmd", argv, "dir", dir, "err", err, "output", string(out))
}

// NormalizeManifest re-serializes the TOML file at path and collapses its
// newline runs, overwriting the file.
func NormalizeManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := toml.LoadBytes(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w: %w", path, ErrManifest, err)
	}
	out, err := doc.ToTomlString()
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(CollapseNewlines(out)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Run formats the project at root and normalizes each manifest, given as a
// slash-separated path relative to root. The first manifest error stops it.
func Run(ctx context.Context, root string, manifests []string, formatter []string) error {
	RunFormatter(ctx, root, formatter)

	for _, rel := range manifests {
		if err := NormalizeManifest(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			return err
		}
	}
	return nil
}
