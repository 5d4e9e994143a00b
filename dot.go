package treego

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Debug output helpers. These render the current topology for human
// inspection; neither format can be read back in.

var (
	payloadColor = color.New(color.FgBlue)
	handleColor  = color.New(color.Faint)
)

// WriteDot writes the tree's structure to w in Graphviz DOT format
// (for debugging purposes). Each live node becomes a DOT node labeled
// with its payload and handle; parent→child edges follow append order.
// Detached subtrees are included as separate components.
func (t *Tree[V]) WriteDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder

	for _, top := range t.components() {
		for h := range t.Descendants(top) {
			n, ok := t.nodes.Get(h)
			if !ok {
				break
			}
			style := "shape=box"
			if h == t.root {
				style = "shape=box,style=bold"
			}
			fmt.Fprintf(&nodelist, "\t\"%s\" [label=\"%v\\n%s\",%s];\n", dotID(h), n.data, h, style)
			for c := range t.Children(h) {
				fmt.Fprintf(&edgelist, "\t\"%s\" -> \"%s\";\n", dotID(h), dotID(c))
			}
		}
	}

	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")

	return err
}

// Fprint writes an indented text rendering of the tree to w, payloads
// colorized for terminals (disabled automatically on non-terminal
// writers by the color package). The designated root's component comes
// first, detached components follow.
func (t *Tree[V]) Fprint(w io.Writer) error {
	for _, top := range t.components() {
		for h, depth := range t.DescendantsWithDepth(top) {
			n, ok := t.nodes.Get(h)
			if !ok {
				break
			}
			indent := strings.Repeat("    ", depth)
			line := fmt.Sprintf("%s%s  %s\n",
				indent,
				payloadColor.Sprintf("%v", n.data),
				handleColor.Sprint(h.String()),
			)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

// components returns the tops of all connected components in slot order,
// the designated root first when present.
func (t *Tree[V]) components() []Handle {
	var tops []Handle
	if !t.root.IsNil() {
		tops = append(tops, t.root)
	}
	for h := range t.nodes.Indexes() {
		if h == t.root {
			continue
		}
		if n, ok := t.nodes.Get(h); ok && n.parent.IsNil() {
			tops = append(tops, h)
		}
	}

	return tops
}

// dotID is the DOT node identifier for a handle, unique among live nodes.
func dotID(h Handle) string {
	return strings.NewReplacer("Index(", "", ")", "", " ", "").Replace(h.String())
}
