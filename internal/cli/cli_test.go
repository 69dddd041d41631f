package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/embassy-tools/embassy-cli/internal/catalog"
	"github.com/embassy-tools/embassy-cli/internal/prompt"
	"github.com/embassy-tools/embassy-cli/internal/scaffold"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error: %v", err)
	}
	return cat
}

func TestResolveConfigFromFlags(t *testing.T) {
	cat := loadCatalog(t)

	cfg, err := resolveConfig(createInputs{
		Name:      "blinky",
		Vendor:    "ST",
		MCU:       "STM32F401RE",
		Workspace: true,
	}, cat, nil)
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}

	want := scaffold.GeneratorConfig{
		Name:      "blinky",
		Vendor:    "st",
		MCU:       "stm32f401re",
		Target:    "thumbv7em-none-eabihf",
		Workspace: true,
	}
	if cfg != want {
		t.Errorf("resolveConfig() = %+v, want %+v", cfg, want)
	}
}

func TestResolveConfigPrompts(t *testing.T) {
	cat := loadCatalog(t)
	var out bytes.Buffer
	// name, vendor #3 (rp), MCU #1 (rp2040)
	p := prompt.New(strings.NewReader("pico\n3\n1\n"), &out)

	cfg, err := resolveConfig(createInputs{NoPin: true}, cat, p)
	if err != nil {
		t.Fatalf("resolveConfig() error: %v", err)
	}

	if cfg.Name != "pico" || cfg.Vendor != "rp" || cfg.MCU != "rp2040" {
		t.Errorf("resolveConfig() = %+v", cfg)
	}
	if cfg.Target != "thumbv6m-none-eabi" {
		t.Errorf("Target = %q, want thumbv6m-none-eabi", cfg.Target)
	}
	if !cfg.NoPin {
		t.Error("NoPin was dropped")
	}
	if !strings.Contains(out.String(), "Select MCU:") {
		t.Errorf("MCU menu not shown:\n%s", out.String())
	}
}

func TestResolveConfigErrors(t *testing.T) {
	cat := loadCatalog(t)

	tests := []struct {
		name    string
		in      createInputs
		wantErr error
		wantMsg string
	}{
		{"missing name", createInputs{Vendor: "st", MCU: "stm32f401re"}, nil, "--name is required"},
		{"bad name", createInputs{Name: "1blinky", Vendor: "st", MCU: "stm32f401re"}, nil, "invalid project name"},
		{"missing vendor", createInputs{Name: "blinky"}, nil, "--vendor is required"},
		{"missing mcu", createInputs{Name: "blinky", Vendor: "nrf"}, nil, "--mcu is required"},
		{"unknown vendor", createInputs{Name: "blinky", Vendor: "esp", MCU: "esp32"}, catalog.ErrUnknownVendor, ""},
		{"mismatched mcu", createInputs{Name: "blinky", Vendor: "rp", MCU: "nrf52840"}, catalog.ErrUnknownMCU, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveConfig(tt.in, cat, nil)
			if err == nil {
				t.Fatal("resolveConfig() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestResolveConfigPromptEOF(t *testing.T) {
	p := prompt.New(strings.NewReader(""), io.Discard)
	if _, err := resolveConfig(createInputs{Name: "blinky"}, loadCatalog(t), p); !errors.Is(err, io.EOF) {
		t.Errorf("error = %v, want io.EOF", err)
	}
}

func TestValidateName(t *testing.T) {
	for _, ok := range []string{"blinky", "my-app", "my_app", "App2", "_x"} {
		if err := validateName(ok); err != nil {
			t.Errorf("validateName(%q) error: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "2fast", "has space", "dot.name", "../escape"} {
		if err := validateName(bad); err == nil {
			t.Errorf("validateName(%q) expected error", bad)
		}
	}
}

func TestWriteVendors(t *testing.T) {
	var buf bytes.Buffer
	if err := writeVendors(&buf, loadCatalog(t), false); err != nil {
		t.Fatalf("writeVendors() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"VENDOR", "st", "NRF", "rp"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMCUsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeMCUs(&buf, loadCatalog(t), "rp", true); err != nil {
		t.Fatalf("writeMCUs() error: %v", err)
	}

	var entries []mcuEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(entries) == 0 || entries[0].MCU != "rp2040" || entries[0].Target != "thumbv6m-none-eabi" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestWriteMCUsUnknownVendor(t *testing.T) {
	err := writeMCUs(io.Discard, loadCatalog(t), "esp", false)
	if !errors.Is(err, catalog.ErrUnknownVendor) {
		t.Errorf("error = %v, want ErrUnknownVendor", err)
	}
}

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"create", "list", "completion", "config", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered (got %v, %v)", name, cmd, err)
		}
	}

	for _, flag := range []string{"name", "vendor", "mcu", "no-pin", "workspace"} {
		if createCmd.Flags().Lookup(flag) == nil {
			t.Errorf("create is missing --%s", flag)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	buildVersion, buildCommit, buildDate = "1.2.3", "abc", "today"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--short"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		versionShort = false
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "1.2.3" {
		t.Errorf("version --short = %q, want 1.2.3", got)
	}
}
