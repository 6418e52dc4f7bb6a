package dump

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/sumtree/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Options configures console output.
type Options struct {
	Width   int            // line width in en; 0 means no limit
	Color   bool           // colorize output
	Context *uax11.Context // context for character widths; nil means Latin
}

// OptionsFromTerminal derives options from the terminal attached to stdin,
// if any, and from the user's environment.
func OptionsFromTerminal() Options {
	opts := Options{Width: 80, Context: uax11.ContextFromEnvironment()}
	if term.IsTerminal(0) {
		opts.Color = true
		if w, _, err := term.GetSize(0); err == nil && w > 20 {
			opts.Width = w
		}
	}
	tracer().Debugf("dump: line width %d, color %v", opts.Width, opts.Color)
	return opts
}

var setupGraphemes sync.Once

// Console writes an indented outline of a tree. Every internal node is
// printed with its height, item count and summary; every leaf with its
// items, as produced by label. Lines are cut to fit opts.Width.
func Console[I btree.SummarizedItem[S], S any](w io.Writer, tree *btree.Tree[I, S], label func(I) string, opts Options) error {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if label == nil {
		label = func(item I) string { return fmt.Sprintf("%v", item) }
	}
	if opts.Context == nil {
		opts.Context = uax11.LatinContext
	}
	c := console[I, S]{w: w, label: label, opts: opts}
	c.inner, c.leaf, c.item = color.New(color.FgBlue), color.New(color.FgGreen), color.New(color.FgRed)
	if !opts.Color {
		c.inner.DisableColor()
		c.leaf.DisableColor()
		c.item.DisableColor()
	}
	if tree.IsEmpty() {
		return c.line(0, c.inner, "(empty)", "")
	}
	c.line(0, c.inner, fmt.Sprintf("tree height=%d items=%d", tree.Height(), tree.Len()), "")
	c.node(tree.Root(), 1)
	return c.err
}

type console[I btree.SummarizedItem[S], S any] struct {
	w                 io.Writer
	label             func(I) string
	opts              Options
	inner, leaf, item *color.Color
	err               error
}

func (c *console[I, S]) node(n btree.Node[I, S], depth int) {
	if c.err != nil {
		return
	}
	if n.IsLeaf() {
		labels := make([]string, 0, n.Len())
		for i := 0; i < n.Len(); i++ {
			item, _ := n.ItemAt(i)
			labels = append(labels, fmt.Sprintf("%q", c.label(item)))
		}
		c.line(depth, c.leaf, fmt.Sprintf("leaf[%d] ", n.Len()), strings.Join(labels, " "))
		return
	}
	c.line(depth, c.inner, fmt.Sprintf("node h=%d n=%d items=%d %+v", n.Height(), n.Len(), n.Count(), n.Summary()), "")
	for i := 0; i < n.Len(); i++ {
		child, _ := n.ChildAt(i)
		c.node(child, depth+1)
	}
}

// line prints head in color hc and rest in the item color, cutting the
// line at the configured width.
func (c *console[I, S]) line(depth int, hc *color.Color, head, rest string) error {
	if c.err != nil {
		return c.err
	}
	indent := strings.Repeat("  ", depth)
	room := -1
	if c.opts.Width > 0 {
		room = max(c.opts.Width-len(indent), 1)
	}
	head, room = fit(head, room, c.opts.Context)
	rest, _ = fit(rest, room, c.opts.Context)
	if _, c.err = io.WriteString(c.w, indent); c.err != nil {
		return c.err
	}
	if _, c.err = hc.Fprint(c.w, head); c.err != nil {
		return c.err
	}
	if rest != "" {
		if _, c.err = c.item.Fprint(c.w, rest); c.err != nil {
			return c.err
		}
	}
	_, c.err = io.WriteString(c.w, "\n")
	return c.err
}

// fit cuts s at grapheme boundaries to at most room en, marking a cut with '…'. A negative room
// means unlimited. It returns the remaining room.
func fit(s string, room int, ctx *uax11.Context) (string, int) {
	if room < 0 {
		return s, room
	}
	if width(s, ctx) <= room {
		return s, room - width(s, ctx)
	}
	var sb strings.Builder
	used := 0
	gstr := grapheme.StringFromString(s)
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := width(g, ctx)
		if used+w+1 > room {
			break
		}
		sb.WriteString(g)
		used += w
	}
	if room > 0 {
		sb.WriteRune('…')
	}
	return sb.String(), 0
}

func width(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}
