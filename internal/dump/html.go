package dump

import (
	"fmt"
	"io"

	"github.com/npillmayer/sumtree/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes a tree as nested unordered lists. Internal nodes carry class
// "node", leaves class "leaf" and items class "item".
func HTML[I btree.SummarizedItem[S], S any](w io.Writer, tree *btree.Tree[I, S], label func(I) string) error {
	if label == nil {
		label = func(item I) string { return fmt.Sprintf("%v", item) }
	}
	root := element(atom.Div, "sumtree")
	if tree.IsEmpty() {
		root.AppendChild(textNode("(empty)"))
	} else {
		root.AppendChild(textNode(fmt.Sprintf("height=%d items=%d", tree.Height(), tree.Len())))
		list := element(atom.Ul, "")
		list.AppendChild(htmlNode(tree.Root(), label))
		root.AppendChild(list)
	}
	return html.Render(w, root)
}

func htmlNode[I btree.SummarizedItem[S], S any](n btree.Node[I, S], label func(I) string) *html.Node {
	if n.IsLeaf() {
		li := element(atom.Li, "leaf")
		items := element(atom.Ol, "")
		for i := 0; i < n.Len(); i++ {
			item, _ := n.ItemAt(i)
			entry := element(atom.Li, "item")
			code := element(atom.Code, "")
			code.AppendChild(textNode(label(item)))
			entry.AppendChild(code)
			items.AppendChild(entry)
		}
		li.AppendChild(items)
		return li
	}
	li := element(atom.Li, "node")
	li.AppendChild(textNode(fmt.Sprintf("h=%d items=%d %+v", n.Height(), n.Count(), n.Summary())))
	children := element(atom.Ul, "")
	for i := 0; i < n.Len(); i++ {
		child, _ := n.ChildAt(i)
		children.AppendChild(htmlNode(child, label))
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
