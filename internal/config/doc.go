// Package config manages user-level settings stored at ~/.embassy-cli/config.yaml.
// Values can be overridden per invocation with EMBASSY_CLI_* environment
// variables. Settings cover where upstream metadata is fetched from, the
// transport timeout and the formatter run over generated projects.
package config
