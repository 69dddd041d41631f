// Package catalog holds the static table of supported vendors and MCUs, and
// the rules that map an MCU to its compiler target triple. The table is
// embedded as YAML, checked against an embedded JSON Schema, and loaded into
// an immutable *Catalog that callers pass around explicitly.
package catalog
