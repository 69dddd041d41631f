// Package scaffold builds new Embassy firmware projects. It powers the
// "embassy-cli create" command: framework metadata is resolved from the
// upstream repository, rendered into an in-memory tree from embedded
// templates, written to disk, and post-processed.
package scaffold
