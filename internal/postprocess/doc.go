// Package postprocess tidies a freshly materialized project: it runs the
// source formatter over the package tree and rewrites TOML manifests into
// canonical form with runs of newlines collapsed.
package postprocess
