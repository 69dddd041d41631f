package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/embassy-tools/embassy-cli/internal/branding"
	"github.com/embassy-tools/embassy-cli/internal/catalog"
	"github.com/embassy-tools/embassy-cli/internal/config"
	"github.com/embassy-tools/embassy-cli/internal/prompt"
	"github.com/embassy-tools/embassy-cli/internal/scaffold"
	"github.com/embassy-tools/embassy-cli/internal/upstream"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cargo package names: ASCII letters, digits, '-' and '_', not starting with a digit.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

var (
	createName      string
	createVendor    string
	createMCU       string
	createNoPin     bool
	createWorkspace bool
)

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Project name (prompted for when omitted)")
	createCmd.Flags().StringVarP(&createVendor, "vendor", "v", "", "Chip vendor: st, nrf or rp (prompted for when omitted)")
	createCmd.Flags().StringVarP(&createMCU, "mcu", "m", "", "Microcontroller, e.g. stm32f401re (prompted for when omitted)")
	createCmd.Flags().BoolVar(&createNoPin, "no-pin", false, "Do not pin framework crates to the latest upstream commit")
	createCmd.Flags().BoolVar(&createWorkspace, "workspace", false, "Generate a workspace with an app and a library crate")

	_ = createCmd.RegisterFlagCompletionFunc("vendor", completeVendors)
	_ = createCmd.RegisterFlagCompletionFunc("mcu", completeMCUs)

	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a new Embassy firmware project",
	Long: `Generate a new Embassy firmware project in ./<name>.

Missing values are asked for interactively when stdin is a terminal.

Examples:
  ` + branding.CLIName() + ` create --name blinky --vendor st --mcu stm32f401re
  ` + branding.CLIName() + ` create -n sensors -v nrf -m nrf52840 --workspace
  ` + branding.CLIName() + ` create -n pico -v rp -m rp2040 --no-pin`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

// createInputs are the raw user answers before catalog validation.
type createInputs struct {
	Name      string
	Vendor    string
	MCU       string
	NoPin     bool
	Workspace bool
}

func runCreate(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading chip catalog: %w", err)
	}

	in := createInputs{
		Name:      createName,
		Vendor:    createVendor,
		MCU:       createMCU,
		NoPin:     createNoPin,
		Workspace: createWorkspace,
	}

	var p *prompt.Prompter
	if prompt.IsInteractive(os.Stdin) {
		p = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	cfg, err := resolveConfig(in, cat, p)
	if err != nil {
		return err
	}

	client := newUpstreamClient()
	builder := scaffold.NewBuilder(client, scaffold.WithGitURL(client.GitURL()))

	result, err := builder.Generate(cmd.Context(), cfg, scaffold.GenerateOptions{
		BaseDir:   ".",
		Formatter: config.Formatter(),
	})
	if err != nil {
		return fmt.Errorf("generating %s: %w", cfg.Name, err)
	}

	printResult(cmd.OutOrStdout(), cfg, result)
	return nil
}

// resolveConfig fills missing inputs through p, checks the vendor/MCU pair
// against the catalog and looks up the target triple. A nil p makes every
// missing input an error.
func resolveConfig(in createInputs, cat *catalog.Catalog, p *prompt.Prompter) (scaffold.GeneratorConfig, error) {
	var err error

	if in.Name == "" {
		if p == nil {
			return scaffold.GeneratorConfig{}, fmt.Errorf("--name is required")
		}
		if in.Name, err = p.Text("Project name", ""); err != nil {
			return scaffold.GeneratorConfig{}, err
		}
	}
	if err := validateName(in.Name); err != nil {
		return scaffold.GeneratorConfig{}, err
	}

	if in.Vendor == "" {
		if p == nil {
			return scaffold.GeneratorConfig{}, fmt.Errorf("--vendor is required (one of %s)", strings.Join(cat.Vendors(), ", "))
		}
		if in.Vendor, err = choose(p, "Select vendor:", cat.Vendors()); err != nil {
			return scaffold.GeneratorConfig{}, err
		}
	}
	in.Vendor = strings.ToLower(in.Vendor)

	if in.MCU == "" {
		mcus, err := cat.MCUs(in.Vendor)
		if err != nil {
			return scaffold.GeneratorConfig{}, err
		}
		if p == nil {
			return scaffold.GeneratorConfig{}, fmt.Errorf("--mcu is required (run '%s list %s' for choices)", branding.CLIName(), in.Vendor)
		}
		if in.MCU, err = choose(p, "Select MCU:", mcus); err != nil {
			return scaffold.GeneratorConfig{}, err
		}
	}
	in.MCU = strings.ToLower(in.MCU)

	if err := cat.Validate(in.Vendor, in.MCU); err != nil {
		return scaffold.GeneratorConfig{}, err
	}
	target, err := cat.Target(in.MCU)
	if err != nil {
		return scaffold.GeneratorConfig{}, err
	}

	return scaffold.GeneratorConfig{
		Name:      in.Name,
		Vendor:    in.Vendor,
		MCU:       in.MCU,
		Target:    target,
		NoPin:     in.NoPin,
		Workspace: in.Workspace,
	}, nil
}

func choose(p *prompt.Prompter, label string, items []string) (string, error) {
	idx, err := p.Select(label, items)
	if err != nil {
		return "", err
	}
	return items[idx], nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use letters, digits, '-' or '_', not starting with a digit", name)
	}
	return nil
}

func newUpstreamClient() *upstream.Client {
	return upstream.New(
		upstream.WithHTTPClient(&http.Client{Timeout: config.HTTPTimeout()}),
		upstream.WithAPIBase(config.APIBase()),
		upstream.WithRawBase(config.RawBase()),
		upstream.WithRepo(config.UpstreamRepo()),
		upstream.WithBranch(config.UpstreamBranch()),
		upstream.WithToken(config.GitHubToken()),
	)
}

func printResult(w io.Writer, cfg scaffold.GeneratorConfig, result *scaffold.Result) {
	pr := message.NewPrinter(language.English)

	pr.Fprintf(w, "Created %s at %s/ (%d files)\n", cfg.Name, result.Root, len(result.Files))
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}

	md := result.Metadata
	fmt.Fprintf(w, "\nMCU:       %s (%s)\n", cfg.MCU, cfg.Target)
	fmt.Fprintf(w, "Toolchain: %s\n", md.Channel)
	if md.Pinned() {
		fmt.Fprintf(w, "Pinned to: %s\n", md.Commit)
	} else {
		fmt.Fprintln(w, "Pinned to: nothing (tracking upstream)")
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", result.Root)
	fmt.Fprintln(w, "  2. Connect your board and a debug probe")
	fmt.Fprintln(w, "  3. Run 'cargo run --release' to flash and watch the log")
}

func completeVendors(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return cat.Vendors(), cobra.ShellCompDirectiveNoFileComp
}

func completeMCUs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	vendors := cat.Vendors()
	if v, _ := cmd.Flags().GetString("vendor"); v != "" {
		vendors = []string{strings.ToLower(v)}
	}

	var mcus []string
	for _, v := range vendors {
		list, err := cat.MCUs(v)
		if err != nil {
			continue
		}
		for _, m := range list {
			if strings.HasPrefix(m, toComplete) {
				mcus = append(mcus, m)
			}
		}
	}
	return mcus, cobra.ShellCompDirectiveNoFileComp
}
