package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/embassy-tools/embassy-cli/internal/branding"
	"github.com/google/shlex"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyUpstreamRepo   = "upstream_repo"
	KeyUpstreamBranch = "upstream_branch"
	KeyAPIBase        = "api_base"
	KeyRawBase        = "raw_base"
	KeyGitHubToken    = "github_token"
	KeyHTTPTimeout    = "http_timeout"
	KeyFormatter      = "formatter"
)

// Defaults for the keys above.
const (
	DefaultAPIBase     = "https://api.github.com"
	DefaultRawBase     = "https://raw.githubusercontent.com"
	DefaultHTTPTimeout = 60 * time.Second
	DefaultFormatter   = "cargo fmt"
)

// Dir returns the path to the config directory (~/.embassy-cli/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.embassy-cli/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyUpstreamRepo, branding.UpstreamRepo())
	viper.SetDefault(KeyUpstreamBranch, branding.UpstreamBranch())
	viper.SetDefault(KeyAPIBase, DefaultAPIBase)
	viper.SetDefault(KeyRawBase, DefaultRawBase)
	viper.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	viper.SetDefault(KeyFormatter, DefaultFormatter)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// UpstreamRepo returns the "owner/repo" metadata is resolved against.
func UpstreamRepo() string { return viper.GetString(KeyUpstreamRepo) }

// UpstreamBranch returns the branch raw descriptor files are read from.
func UpstreamBranch() string { return viper.GetString(KeyUpstreamBranch) }

// APIBase returns the GitHub REST API base URL.
func APIBase() string { return viper.GetString(KeyAPIBase) }

// RawBase returns the base URL for plain-text file fetches.
func RawBase() string { return viper.GetString(KeyRawBase) }

// HTTPTimeout returns the transport timeout. Zero disables it.
func HTTPTimeout() time.Duration { return viper.GetDuration(KeyHTTPTimeout) }

// GitHubToken returns the configured token, falling back to GITHUB_TOKEN.
// An empty result means requests go out unauthenticated.
func GitHubToken() string {
	if v := viper.GetString(KeyGitHubToken); v != "" {
		return v
	}
	return os.Getenv("GITHUB_TOKEN")
}

// Formatter returns the formatter argv, split with shell quoting rules. Nil
// means formatting is disabled. An unparsable command also disables it.
func Formatter() []string {
	argv, err := shlex.Split(viper.GetString(KeyFormatter))
	if err != nil {
		slog.Warn("ignoring formatter setting", "value", viper.GetString(KeyFormatter), "err", err)
		return nil
	}
	return argv
}
