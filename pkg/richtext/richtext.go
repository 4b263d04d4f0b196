// Package richtext provides a markup-agnostic rich text tree.
//
// Formatted bibliography text is built as a tree of nodes carrying
// semantic spans (emphasis, strong, superscript, hyperlink) rather than
// concrete markup. A downstream target resolves the tree into its final
// form: plain text, HTML, or Markdown (see render.go).
//
// Nodes are immutable values; helpers that modify text return new trees.
package richtext

import "strings"

// Span kinds. KindText leaves carry text; all other kinds carry children.
const (
	KindText   = "text"
	KindSeq    = "seq"
	KindEmph   = "em"
	KindStrong = "strong"
	KindSup    = "sup"
	KindLink   = "a"
)

// Node is one node in a rich text tree.
type Node struct {
	Kind     string
	Text     string // KindText only
	Href     string // KindLink only: the link target
	Children []Node
}

// Text creates a plain text leaf.
func Text(s string) Node { return Node{Kind: KindText, Text: s} }

// Seq groups nodes into a sequence with no added separators.
func Seq(children ...Node) Node { return Node{Kind: KindSeq, Children: children} }

// Emph wraps children in an emphasis span.
func Emph(children ...Node) Node { return Node{Kind: KindEmph, Children: children} }

// Strong wraps children in a strong span.
func Strong(children ...Node) Node { return Node{Kind: KindStrong, Children: children} }

// Sup wraps children in a superscript span.
func Sup(children ...Node) Node { return Node{Kind: KindSup, Children: children} }

// Link wraps children in a hyperlink span targeting href.
func Link(href string, children ...Node) Node {
	return Node{Kind: KindLink, Href: href, Children: children}
}

// Empty is the zero-value node; it renders to nothing in every target.
var Empty = Node{Kind: KindSeq}

// IsEmpty reports whether the node renders no visible characters.
func (n Node) IsEmpty() bool {
	if n.Kind == KindText || n.Kind == "" {
		return n.Text == ""
	}
	for _, c := range n.Children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Plain renders the tree as plain text. Semantic spans contribute their
// children's text only; superscript and links keep their visible text.
func (n Node) Plain() string {
	var b strings.Builder
	n.writePlain(&b)
	return b.String()
}

// String is an alias for Plain so nodes print naturally in logs and tests.
func (n Node) String() string { return n.Plain() }

func (n Node) writePlain(b *strings.Builder) {
	if n.Kind == KindText || n.Kind == "" {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writePlain(b)
	}
}

// LastRune returns the final visible rune of the tree, if any.
func (n Node) LastRune() (rune, bool) {
	if n.Kind == KindText || n.Kind == "" {
		runes := []rune(n.Text)
		if len(runes) == 0 {
			return 0, false
		}
		return runes[len(runes)-1], true
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if r, ok := n.Children[i].LastRune(); ok {
			return r, true
		}
	}
	return 0, false
}

// TrimTrailing returns a copy of the tree with trailing runes in cutset
// removed from the end of its visible text. Trimming stops at the first
// rune not in cutset.
func TrimTrailing(n Node, cutset string) Node {
	trimmed, _ := trimTail(n, cutset)
	return trimmed
}

// trimTail trims from the rightmost text leaf inward. done reports that a
// rune outside cutset was reached and trimming must stop.
func trimTail(n Node, cutset string) (Node, bool) {
	if n.Kind == KindText || n.Kind == "" {
		rest := strings.TrimRight(n.Text, cutset)
		out := n
		out.Text = rest
		// Trimming is complete once something survives in this leaf.
		return out, rest != ""
	}
	out := n
	out.Children = append([]Node(nil), n.Children...)
	for i := len(out.Children) - 1; i >= 0; i-- {
		child, done := trimTail(out.Children[i], cutset)
		out.Children[i] = child
		if done {
			return out, true
		}
	}
	return out, false
}
