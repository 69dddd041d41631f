// Package tree models a generated project as an immutable tree of
// directories and files, and flattens it into the ordered filesystem
// instructions the materializer executes.
package tree
