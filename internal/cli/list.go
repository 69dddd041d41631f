package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/embassy-tools/embassy-cli/internal/catalog"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [vendor]",
	Short: "List supported vendors and MCUs",
	Long: `Without arguments, list the supported chip vendors. With a vendor, list
its MCUs together with the compiler target each one builds for.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeVendorArg,
	RunE:              runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// vendorEntry is one row of the vendor listing.
type vendorEntry struct {
	Name string `json:"name"`
	MCUs int    `json:"mcus"`
}

// mcuEntry is one row of a vendor's MCU listing.
type mcuEntry struct {
	MCU    string `json:"mcu"`
	Target string `json:"target"`
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading chip catalog: %w", err)
	}
	if len(args) == 0 {
		return writeVendors(cmd.OutOrStdout(), cat, listJSON)
	}
	return writeMCUs(cmd.OutOrStdout(), cat, strings.ToLower(args[0]), listJSON)
}

func writeVendors(w io.Writer, cat *catalog.Catalog, asJSON bool) error {
	var entries []vendorEntry
	for _, v := range cat.Vendors() {
		mcus, err := cat.MCUs(v)
		if err != nil {
			return err
		}
		entries = append(entries, vendorEntry{Name: v, MCUs: len(mcus)})
	}

	if asJSON {
		return writeJSON(w, entries)
	}

	pr := message.NewPrinter(language.English)
	upper := cases.Upper(language.Und)
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "VENDOR\tNAME\tMCUS")
	for _, e := range entries {
		pr.Fprintf(tw, "%s\t%s\t%d\n", e.Name, upper.String(e.Name), e.MCUs)
	}
	return tw.Flush()
}

func writeMCUs(w io.Writer, cat *catalog.Catalog, vendor string, asJSON bool) error {
	mcus, err := cat.MCUs(vendor)
	if err != nil {
		return fmt.Errorf("%w (known vendors: %s)", err, strings.Join(cat.Vendors(), ", "))
	}

	entries := make([]mcuEntry, 0, len(mcus))
	for _, m := range mcus {
		target, err := cat.Target(m)
		if err != nil {
			return err
		}
		entries = append(entries, mcuEntry{MCU: m, Target: target})
	}

	if asJSON {
		return writeJSON(w, entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "MCU\tTARGET")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.MCU, e.Target)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func completeVendorArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeVendors(cmd, args, toComplete)
}
