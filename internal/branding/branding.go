// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks that publish under a different name or point
// at a different upstream framework repository edit that file only.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	GitHubRepo     string `yaml:"github_repo"`
	UpstreamRepo   string `yaml:"upstream_repo"`
	UpstreamBranch string `yaml:"upstream_branch"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "embassy-cli",
			DisplayName:    "Embassy CLI",
			Description:    "Scaffold ready-to-build Embassy firmware projects",
			HomeDir:        ".embassy-cli",
			EnvPrefix:      "EMBASSY_CLI",
			GoModule:       "github.com/embassy-tools/embassy-cli",
			GitHubRepo:     "embassy-tools/embassy-cli",
			UpstreamRepo:   "embassy-rs/embassy",
			UpstreamBranch: "main",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "embassy-cli").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".embassy-cli").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "EMBASSY_CLI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path of this tool.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string of this tool.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// UpstreamRepo returns the "owner/repo" of the framework that generated
// projects depend on (e.g., "embassy-rs/embassy").
func UpstreamRepo() string { load(); return defaults.UpstreamRepo }

// UpstreamBranch returns the default branch raw files are read from.
func UpstreamBranch() string { load(); return defaults.UpstreamBranch }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("api_base") → "EMBASSY_CLI_API_BASE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
