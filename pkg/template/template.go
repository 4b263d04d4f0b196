// Package template provides composable text-fragment builders for
// bibliography rendering.
//
// A template is an immutable tree of fragments (literal, field lookup,
// optional, join, sentence, tag, together) evaluated against one entry.
// Evaluation produces a richtext tree, so the same template output can
// later resolve to plain text, HTML, or Markdown.
//
// Evaluation is pure: the same entry and template always produce the
// same output. Failure state is carried in the evaluation result rather
// than raised mid-walk, so Optional can detect and discard failed
// subtrees cheaply:
//
//   - Field outside any Optional fails the entry with a
//     MissingFieldError when the field is absent.
//   - Field inside an Optional suppresses the whole optional fragment.
//   - Nothing (and Rich with an empty node) marks soft absence: it
//     suppresses an enclosing Optional but renders as empty text at the
//     top level, never as an error.
package template

import (
	"strings"

	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/errors"
	"github.com/citemill/citemill/pkg/richtext"
)

type op int

const (
	opLiteral op = iota
	opField
	opOptional
	opJoin
	opSentence
	opTag
	opTogether
	opRich
	opNothing
)

// Fragment is one node in a template tree. Fragments are immutable
// values; build them with the constructor functions in this package.
type Fragment struct {
	op   op
	text string        // literal text, or field name for opField
	sep  string        // separator for opJoin
	span string        // richtext kind for opTag
	href string        // link target for opTag with KindLink
	node richtext.Node // embedded rich text for opRich
	kids []Fragment
}

// Literal produces fixed text.
func Literal(s string) Fragment { return Fragment{op: opLiteral, text: s} }

// Field looks up a field on the current entry. Outside an Optional, a
// missing field fails the entry's rendering pass.
func Field(name string) Fragment { return Fragment{op: opField, text: name} }

// Optional renders its fragments only if every field lookup and every
// embedded value inside succeeds; otherwise it renders to nothing with
// no error propagated.
func Optional(frags ...Fragment) Fragment { return Fragment{op: opOptional, kids: frags} }

// Join concatenates fragments with sep between non-empty ones.
// Empty fragments are skipped entirely, so separators never dangle.
func Join(sep string, frags ...Fragment) Fragment {
	return Fragment{op: opJoin, sep: sep, kids: frags}
}

// Sentence joins fragments with single spaces and guarantees exactly one
// trailing period. A fragment already ending in "?" or "!" keeps its
// terminal punctuation; duplicate trailing periods are collapsed.
func Sentence(frags ...Fragment) Fragment { return Fragment{op: opSentence, kids: frags} }

// Tag wraps fragments in a named semantic span (richtext.KindEmph,
// richtext.KindStrong, richtext.KindSup).
func Tag(kind string, frags ...Fragment) Fragment {
	return Fragment{op: opTag, span: kind, kids: frags}
}

// Link wraps fragments in a hyperlink span targeting href.
func Link(href string, frags ...Fragment) Fragment {
	return Fragment{op: opTag, span: richtext.KindLink, href: href, kids: frags}
}

// Together concatenates fragments with no separator and no suppression
// logic, for tight clusters like "3 & 4.".
func Together(frags ...Fragment) Fragment { return Fragment{op: opTogether, kids: frags} }

// Rich embeds pre-rendered rich text, typically a formatted name list.
// An empty node counts as soft absence: it suppresses an enclosing
// Optional and renders as nothing elsewhere.
func Rich(n richtext.Node) Fragment { return Fragment{op: opRich, node: n} }

// Nothing is always soft-absent. It suppresses an enclosing Optional
// and renders as nothing at the top level.
func Nothing() Fragment { return Fragment{op: opNothing} }

// result carries failure state alongside evaluated output so Optional
// can discard failed subtrees without exceptions crossing boundaries.
type result struct {
	missing []string // required fields that were absent
	absent  bool     // soft absence (Nothing, empty Rich)
}

func (r *result) merge(other result) {
	r.missing = append(r.missing, other.missing...)
	r.absent = r.absent || other.absent
}

func (r result) failed() bool { return len(r.missing) > 0 || r.absent }

// Render evaluates the template against e. Missing required fields
// (any Field outside an Optional) yield a *errors.MissingFieldError
// naming the field and the entry key.
func Render(e *bib.Entry, f Fragment) (richtext.Node, error) {
	node, res := eval(e, f)
	if len(res.missing) > 0 {
		return richtext.Empty, &errors.MissingFieldError{Key: e.Key, Field: res.missing[0]}
	}
	return node, nil
}

func eval(e *bib.Entry, f Fragment) (richtext.Node, result) {
	switch f.op {
	case opLiteral:
		return richtext.Text(f.text), result{}

	case opField:
		if v, ok := e.Field(f.text); ok {
			return richtext.Text(v), result{}
		}
		return richtext.Empty, result{missing: []string{f.text}}

	case opOptional:
		node, res := evalSeq(e, f.kids)
		if res.failed() {
			return richtext.Empty, result{}
		}
		return node, result{}

	case opJoin:
		return evalJoin(e, f.kids, f.sep)

	case opSentence:
		node, res := evalJoin(e, f.kids, " ")
		return terminate(node), res

	case opTag:
		node, res := evalSeq(e, f.kids)
		if node.IsEmpty() {
			return richtext.Empty, res
		}
		if f.span == richtext.KindLink {
			return richtext.Link(f.href, node), res
		}
		return richtext.Node{Kind: f.span, Children: []richtext.Node{node}}, res

	case opTogether:
		return evalSeq(e, f.kids)

	case opRich:
		if f.node.IsEmpty() {
			return richtext.Empty, result{absent: true}
		}
		return f.node, result{}

	case opNothing:
		return richtext.Empty, result{absent: true}

	default:
		return richtext.Empty, result{}
	}
}

// evalSeq concatenates children with no separator, merging failure state.
func evalSeq(e *bib.Entry, kids []Fragment) (richtext.Node, result) {
	var res result
	nodes := make([]richtext.Node, 0, len(kids))
	for _, k := range kids {
		n, r := eval(e, k)
		res.merge(r)
		if !n.IsEmpty() {
			nodes = append(nodes, n)
		}
	}
	return richtext.Seq(nodes...), res
}

// evalJoin concatenates children with sep between non-empty results.
func evalJoin(e *bib.Entry, kids []Fragment, sep string) (richtext.Node, result) {
	var res result
	var nodes []richtext.Node
	for _, k := range kids {
		n, r := eval(e, k)
		res.merge(r)
		if n.IsEmpty() {
			continue
		}
		if len(nodes) > 0 && sep != "" {
			nodes = append(nodes, richtext.Text(sep))
		}
		nodes = append(nodes, n)
	}
	return richtext.Seq(nodes...), res
}

// terminate enforces the sentence contract: exactly one trailing period,
// no duplicate terminal punctuation. Empty input stays empty.
func terminate(n richtext.Node) richtext.Node {
	if n.IsEmpty() {
		return n
	}
	n = richtext.TrimTrailing(n, " \t")
	if r, ok := n.LastRune(); ok && strings.ContainsRune("!?", r) {
		return n
	}
	n = richtext.TrimTrailing(n, ".")
	return richtext.Seq(n, richtext.Text("."))
}
