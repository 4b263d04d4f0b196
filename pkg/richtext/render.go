package richtext

import (
	"html"
	"strings"
)

// Plain renders the tree as plain text, mirroring HTML and Markdown so
// all three render targets share the same call shape.
func Plain(n Node) string { return n.Plain() }

// HTML renders the tree as an HTML fragment. Text content and link
// targets are escaped; semantic spans map to em, strong, sup, and a tags.
func HTML(n Node) string {
	var b strings.Builder
	writeHTML(&b, n)
	return b.String()
}

func writeHTML(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindText, "":
		b.WriteString(html.EscapeString(n.Text))
	case KindLink:
		if n.IsEmpty() {
			return
		}
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(n.Href))
		b.WriteString(`">`)
		writeChildrenHTML(b, n)
		b.WriteString("</a>")
	case KindEmph, KindStrong, KindSup:
		if n.IsEmpty() {
			return
		}
		b.WriteString("<" + n.Kind + ">")
		writeChildrenHTML(b, n)
		b.WriteString("</" + n.Kind + ">")
	default: // KindSeq and unknown grouping kinds
		writeChildrenHTML(b, n)
	}
}

func writeChildrenHTML(b *strings.Builder, n Node) {
	for _, c := range n.Children {
		writeHTML(b, c)
	}
}

// Markdown renders the tree as Markdown. Emphasis and strong use * and **;
// superscript falls back to inline <sup> tags, which common Markdown
// renderers pass through.
func Markdown(n Node) string {
	var b strings.Builder
	writeMarkdown(&b, n)
	return b.String()
}

func writeMarkdown(b *strings.Builder, n Node) {
	switch n.Kind {
	case KindText, "":
		b.WriteString(n.Text)
	case KindEmph:
		wrapMarkdown(b, n, "*", "*")
	case KindStrong:
		wrapMarkdown(b, n, "**", "**")
	case KindSup:
		wrapMarkdown(b, n, "<sup>", "</sup>")
	case KindLink:
		if n.IsEmpty() {
			return
		}
		b.WriteString("[")
		writeChildrenMarkdown(b, n)
		b.WriteString("](")
		b.WriteString(n.Href)
		b.WriteString(")")
	default:
		writeChildrenMarkdown(b, n)
	}
}

func wrapMarkdown(b *strings.Builder, n Node, open, close string) {
	if n.IsEmpty() {
		return
	}
	b.WriteString(open)
	writeChildrenMarkdown(b, n)
	b.WriteString(close)
}

func writeChildrenMarkdown(b *strings.Builder, n Node) {
	for _, c := range n.Children {
		writeMarkdown(b, c)
	}
}
