package tree

import (
	"path/filepath"
	"strings"
)

// Node is either a *File or a *Dir. The set is closed; the unexported
// method keeps other packages from adding variants.
type Node interface {
	NodeName() string
	node()
}

// File is a leaf with fully rendered content.
type File struct {
	Name    string
	Content string
}

// Dir holds its children in declaration order.
type Dir struct {
	Name     string
	Children []Node
}

func (f *File) NodeName() string { return f.Name }
func (d *Dir) NodeName() string  { return d.Name }

func (*File) node() {}
func (*Dir) node()  {}

// NewFile returns a file node.
func NewFile(name, content string) *File {
	return &File{Name: name, Content: content}
}

// NewDir returns a directory node with the given children.
func NewDir(name string, children ...Node) *Dir {
	return &Dir{Name: name, Children: children}
}

// Kind tags an Instruction.
type Kind int

const (
	CreateDir Kind = iota
	WriteFile
)

func (k Kind) String() string {
	switch k {
	case CreateDir:
		return "mkdir"
	case WriteFile:
		return "write"
	default:
		return "unknown"
	}
}

// Instruction is one filesystem step. Content is empty for CreateDir.
type Instruction struct {
	Kind    Kind
	Path    string
	Content string
}

// Flatten walks root in pre-order and returns one instruction per node.
// Each node's path is its name joined onto its parent's path, starting from
// base. A directory always precedes its descendants and siblings keep their
// declared order.
func Flatten(root Node, base string) []Instruction {
	var out []Instruction
	var walk func(n Node, parent string)
	walk = func(n Node, parent string) {
		switch n := n.(type) {
		case *File:
			out = append(out, Instruction{
				Kind:    WriteFile,
				Path:    filepath.Join(parent, n.Name),
				Content: n.Content,
			})
		case *Dir:
			path := filepath.Join(parent, n.Name)
			out = append(out, Instruction{Kind: CreateDir, Path: path})
			for _, child := range n.Children {
				walk(child, path)
			}
		}
	}
	walk(root, base)
	return out
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	d, ok := n.(*Dir)
	if !ok {
		return 1
	}
	total := 1
	for _, c := range d.Children {
		total += Count(c)
	}
	return total
}

// Find returns the node at relPath below root, where relPath is a
// slash-separated path that does not include root's own name.
func Find(root *Dir, relPath string) (Node, bool) {
	var cur Node = root
	for _, part := range strings.Split(strings.Trim(relPath, "/"), "/") {
		if part == "" {
			continue
		}
		dir, ok := cur.(*Dir)
		if !ok {
			return nil, false
		}
		next, found := child(dir, part)
		if !found {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func child(d *Dir, name string) (Node, bool) {
	for _, c := range d.Children {
		if c.NodeName() == name {
			return c, true
		}
	}
	return nil, false
}

// Files returns the slash-separated paths, relative to root, of every file
// named name. Paths are returned in pre-order.
func Files(root *Dir, name string) []string {
	var out []string
	var walk func(d *Dir, prefix string)
	walk = func(d *Dir, prefix string) {
		for _, c := range d.Children {
			p := c.NodeName()
			if prefix != "" {
				p = prefix + "/" + p
			}
			switch c := c.(type) {
			case *File:
				if c.Name == name {
					out = append(out, p)
				}
			case *Dir:
				walk(c, p)
			}
		}
	}
	walk(root, "")
	return out
}
