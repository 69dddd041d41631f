// Package materialize executes flattened tree instructions against the
// filesystem.
package materialize

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/embassy-tools/embassy-cli/internal/tree"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Apply runs instructions in order and stops at the first failure. Nothing
// already written is rolled back.
//
// Directories are created with os.Mkdir, so an existing directory is an
// error: the returned error satisfies errors.Is(err, fs.ErrExist). Permission
// problems satisfy errors.Is(err, fs.ErrPermission).
func Apply(instructions []tree.Instruction) error {
	for _, in := range instructions {
		if err := apply(in); err != nil {
			return err
		}
		slog.Debug("materialized", "op", in.Kind.String(), "path", in.Path)
	}
	return nil
}

func apply(in tree.Instruction) error {
	switch in.Kind {
	case tree.CreateDir:
		if err := os.Mkdir(in.Path, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", in.Path, err)
		}
	case tree.WriteFile:
		if err := os.WriteFile(in.Path, []byte(in.Content), filePerm); err != nil {
			return fmt.Errorf("writing %s: %w", in.Path, err)
		}
	default:
		return fmt.Errorf("unsupported instruction %v for %s", in.Kind, in.Path)
	}
	return nil
}
