package btree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dot outputs the node structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders a single item; if it is nil,
// items are printed with %v.
func (t *Tree[I, S]) Dot(w io.Writer, label func(I) string) error {
	return DotShared(w, label, t)
}

// DotShared outputs several trees into one graph. Nodes shared between
// trees appear only once, which visualizes structural sharing between
// versions of a tree.
func DotShared[I SummarizedItem[S], S any](w io.Writer, label func(I) string, trees ...*Tree[I, S]) error {
	if label == nil {
		label = func(item I) string { return fmt.Sprintf("%v", item) }
	}
	bw := bufio.NewWriter(w)
	ids := make(map[Node[I, S]]int)
	var nodes, edges strings.Builder
	var visit func(n Node[I, S]) int
	visit = func(n Node[I, S]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		id := len(ids) + 1
		ids[n] = id
		switch x := n.(type) {
		case *leafNode[I, S]:
			labels := make([]string, len(x.items))
			for i, item := range x.items {
				labels[i] = dotEscape(label(item))
			}
			fmt.Fprintf(&nodes, "\t\"n%d\" [label=\"%s\",shape=box,style=filled];\n",
				id, strings.Join(labels, " | "))
		case *innerNode[I, S]:
			fmt.Fprintf(&nodes, "\t\"n%d\" [label=\"%d\",shape=circle,style=filled,fillcolor=\"#a3d7e4\"];\n",
				id, x.count)
			for _, child := range x.children {
				fmt.Fprintf(&edges, "\t\"n%d\" -> \"n%d\";\n", id, visit(child))
			}
		}
		return id
	}
	for i, t := range trees {
		fmt.Fprintf(&nodes, "\t\"t%d\" [label=\"v%d\",shape=plaintext];\n", i, i)
		if t.IsEmpty() {
			continue
		}
		fmt.Fprintf(&edges, "\t\"t%d\" -> \"n%d\" [style=dashed];\n", i, visit(t.root))
	}
	_, _ = io.WriteString(bw, "strict digraph {\n")
	_, _ = io.WriteString(bw, "\tnode [fontname=Arial,fontsize=12];\n")
	_, _ = io.WriteString(bw, nodes.String())
	_, _ = io.WriteString(bw, edges.String())
	_, _ = io.WriteString(bw, "}\n")
	return bw.Flush()
}

func dotEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return r.Replace(s)
}
