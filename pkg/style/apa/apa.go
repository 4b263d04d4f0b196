// Package apa implements the APA (7th edition) citation style:
// author-year labels, alphabetical sorting, Oxford-comma author lists
// with the 21-author elision rule, and DOIs shown as full URLs.
package apa

import (
	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/richtext"
	"github.com/citemill/citemill/pkg/style"
	"github.com/citemill/citemill/pkg/template"
)

// Name is the registry identifier for this style.
const Name = "apa"

// Shorthand for the template vocabulary; renderers read like the style
// manual this way.
var (
	lit      = template.Literal
	fld      = template.Field
	opt      = template.Optional
	rich     = template.Rich
	sentence = template.Sentence
	together = template.Together
)

func em(frags ...template.Fragment) template.Fragment {
	return template.Tag(richtext.KindEmph, frags...)
}

// names is the APA author list format: two authors joined with " & ",
// longer lists Oxford-comma joined, and lists over 20 authors elided to
// the first 19, an ellipsis, and the final author.
var names = style.ListFormat{
	TwoSep:    " & ",
	Sep:       ", ",
	FinalSep:  ", & ",
	Max:       20,
	ElideLong: true,
}

// New builds the APA style.
func New() *style.Style {
	return &style.Style{
		Name:        Name,
		Description: "APA 7th edition: author-year citations, alphabetical references",
		Sort:        style.ByAuthorYear,
		Labels:      style.AuthorYearLabels,
		Renderers: map[bib.EntryType]style.RenderFunc{
			bib.TypeArticle:       renderArticle,
			bib.TypeBook:          renderBook,
			bib.TypeInProceedings: renderInProceedings,
			bib.TypeMisc:          renderMisc,
		},
	}
}

// authorOrEditor formats the author list, falling back to the editor
// list with its "(Ed.)" suffix. Soft-absent when the entry has neither,
// so an enclosing Optional suppresses cleanly.
func authorOrEditor(e *bib.Entry) template.Fragment {
	if authors := e.PersonList(bib.RoleAuthor); len(authors) > 0 {
		return rich(richtext.Text(style.FormatList(authors, names)))
	}
	if editors := e.PersonList(bib.RoleEditor); len(editors) > 0 {
		return rich(richtext.Text(style.FormatEditors(editors, names)))
	}
	return template.Nothing()
}

// doi renders the DOI as a hyperlink whose visible text is the full
// https://doi.org URL, per APA 7th edition. Soft-absent without a DOI.
func doi(e *bib.Entry) template.Fragment {
	value, ok := e.Field(bib.FieldDOI)
	if !ok {
		return template.Nothing()
	}
	url := "https://doi.org/" + value
	return template.Link(url, lit(url))
}

// renderArticle formats journal articles:
// Author(s). (Year). Title. Journal, Volume(Issue), pages. https://doi.org/...
func renderArticle(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, together(
		authorOrEditor(e),
		lit(" ("), fld(bib.FieldYear), lit("). "),
		fld(bib.FieldTitle), lit(". "),
		em(fld(bib.FieldJournal)),
		opt(lit(", "), em(fld(bib.FieldVolume))),
		opt(lit("("), fld(bib.FieldNumber), lit(")")),
		opt(lit(", "), fld(bib.FieldPages)),
		lit("."),
		opt(lit(" "), doi(e)),
	))
}

// renderBook formats books:
// Author(s). (Year). Title (Edition ed.). Publisher. https://doi.org/...
func renderBook(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, together(
		authorOrEditor(e),
		lit(" ("), fld(bib.FieldYear), lit("). "),
		em(fld(bib.FieldTitle)),
		opt(lit(" ("), fld(bib.FieldEdition), lit(" ed.)")),
		lit(". "),
		fld(bib.FieldPublisher),
		lit("."),
		opt(lit(" "), doi(e)),
	))
}

// renderInProceedings formats conference papers:
// Author(s). (Year). Title. In Editor (Ed.), Conference (pp. pages). Publisher.
func renderInProceedings(e *bib.Entry) (richtext.Node, error) {
	var editors template.Fragment
	if list := e.PersonList(bib.RoleEditor); len(list) > 0 {
		editors = rich(richtext.Text(style.FormatEditors(list, names)))
	} else {
		editors = template.Nothing()
	}

	return template.Render(e, together(
		authorOrEditor(e),
		lit(" ("), fld(bib.FieldYear), lit("). "),
		fld(bib.FieldTitle), lit(". In "),
		opt(editors, lit(", ")),
		em(fld(bib.FieldBookTitle)),
		opt(lit(" (pp. "), fld(bib.FieldPages), lit(")")),
		lit("."),
		opt(lit(" "), fld(bib.FieldPublisher), lit(".")),
		opt(lit(" "), doi(e)),
	))
}

// renderMisc formats websites, datasets, and other loose records:
// Author(s). (Year). Title [HowPublished]. Publisher. URL
// The author block ends in a period; after initials the sentence wrapper
// keeps it to a single one.
func renderMisc(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, together(
		opt(sentence(authorOrEditor(e)), lit(" ")),
		opt(lit("("), fld(bib.FieldYear), lit("). ")),
		em(fld(bib.FieldTitle)),
		opt(lit(" ["), fld(bib.FieldHowPublished), lit("]")),
		lit("."),
		opt(lit(" "), fld(bib.FieldPublisher), lit(".")),
		opt(lit(" "), fld(bib.FieldURL)),
	))
}
