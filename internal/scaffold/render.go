package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/embassy-tools/embassy-cli/internal/tree"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").
		Funcs(template.FuncMap{"quoteJoin": quoteJoin}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// resolvedComponent is a Component with its version and the MCU placeholder
// substituted.
type resolvedComponent struct {
	Name     string
	Version  string
	Features []string
}

type patchData struct {
	GitURL string
	Commit string
}

// templateData holds all variables available to project templates.
type templateData struct {
	Name    string
	LibName string
	AppDir  string
	MCU     string
	Target  string
	Channel string
	Crate   string // vendor crate as a Rust identifier, e.g. embassy_stm32

	Components []resolvedComponent
	Inherit    bool       // emit `{ workspace = true }` instead of versions
	Patch      *patchData // nil omits [patch.crates-io]
}

// renderer executes templates and keeps the first error, so tree literals
// can be written without checking every file.
type renderer struct {
	err error
}

func (r *renderer) file(name, tmpl string, data templateData) *tree.File {
	if r.err != nil {
		return tree.NewFile(name, "")
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		r.err = fmt.Errorf("rendering %s: %w", tmpl, err)
	}
	return tree.NewFile(name, buf.String())
}

// Render builds the project tree from already resolved metadata. It does no
// I/O.
func (b *Builder) Render(cfg GeneratorConfig, md *Metadata) (*tree.Dir, error) {
	components, err := b.components(cfg.Vendor)
	if err != nil {
		return nil, err
	}

	resolved := make([]resolvedComponent, 0, len(components))
	for _, c := range components {
		v, ok := md.Version(c.Name)
		if !ok {
			return nil, fmt.Errorf("no version resolved for %s", c.Name)
		}
		resolved = append(resolved, resolvedComponent{
			Name:     c.Name,
			Version:  v,
			Features: substituteMCU(c.Features, cfg.MCU),
		})
	}

	data := templateData{
		Name:       cfg.Name,
		LibName:    defaultLibName,
		AppDir:     defaultAppDir,
		MCU:        cfg.MCU,
		Target:     cfg.Target,
		Channel:    md.Channel,
		Crate:      crateIdent(components[0].Name),
		Components: resolved,
		Patch:      &patchData{GitURL: b.gitURL, Commit: md.Commit},
	}

	r := &renderer{}
	var root *tree.Dir
	if cfg.Workspace {
		member := data
		member.Inherit = true
		member.Patch = nil

		root = tree.NewDir(cfg.Name,
			r.dotCargo(data),
			r.dotVSCode(data),
			tree.NewDir("crates",
				tree.NewDir(data.AppDir,
					r.appSrc(data),
					r.file("build.rs", "build.rs.tmpl", data),
					r.file("Cargo.toml", "app_cargo.toml.tmpl", member),
				),
				tree.NewDir(data.LibName,
					tree.NewDir("src", r.file("lib.rs", "lib.rs.tmpl", data)),
					r.file("Cargo.toml", "lib_cargo.toml.tmpl", data),
				),
			),
			r.file(".gitignore", "gitignore.tmpl", data),
			r.file("Cargo.toml", "workspace_cargo.toml.tmpl", data),
			r.file("rust-toolchain.toml", "rust_toolchain.toml.tmpl", data),
		)
	} else {
		root = tree.NewDir(cfg.Name,
			r.dotCargo(data),
			r.dotVSCode(data),
			r.appSrc(data),
			r.file(".gitignore", "gitignore.tmpl", data),
			r.file("build.rs", "build.rs.tmpl", data),
			r.file("Cargo.toml", "app_cargo.toml.tmpl", data),
			r.file("rust-toolchain.toml", "rust_toolchain.toml.tmpl", data),
		)
	}

	if r.err != nil {
		return nil, r.err
	}
	return root, nil
}

func (r *renderer) dotCargo(data templateData) *tree.Dir {
	return tree.NewDir(".cargo", r.file("config.toml", "cargo_config.toml.tmpl", data))
}

func (r *renderer) dotVSCode(data templateData) *tree.Dir {
	return tree.NewDir(".vscode", r.file("settings.json", "vscode_settings.json.tmpl", data))
}

func (r *renderer) appSrc(data templateData) *tree.Dir {
	return tree.NewDir("src", r.file("main.rs", "main.rs.tmpl", data))
}

func substituteMCU(features []string, mcu string) []string {
	out := make([]string, len(features))
	for i, f := range features {
		if f == mcuFeature {
			f = mcu
		}
		out[i] = f
	}
	return out
}

// quoteJoin renders a TOML string array body: "a", "b".
func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}
