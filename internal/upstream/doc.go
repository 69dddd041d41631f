// Package upstream resolves metadata about the Embassy framework repository
// that generated projects depend on: the latest commit on the default branch,
// the toolchain channel declared in rust-toolchain.toml, and the published
// version of each framework crate.
//
// Every query is a single round trip. Nothing is retried or cached; callers
// that need a value twice fetch it twice.
package upstream
