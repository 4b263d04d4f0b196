// Package nature implements the Nature journal citation style:
// superscript numbered labels, references in order of appearance, at
// most five listed authors before "et al.", bold volume numbers, and
// DOIs shown as "doi:"-prefixed links.
package nature

import (
	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/richtext"
	"github.com/citemill/citemill/pkg/style"
	"github.com/citemill/citemill/pkg/template"
)

// Name is the registry identifier for this style.
const Name = "nature"

var (
	lit      = template.Literal
	fld      = template.Field
	opt      = template.Optional
	rich     = template.Rich
	together = template.Together
	sentence = template.Sentence
	join     = template.Join
)

func em(frags ...template.Fragment) template.Fragment {
	return template.Tag(richtext.KindEmph, frags...)
}

func strong(frags ...template.Fragment) template.Fragment {
	return template.Tag(richtext.KindStrong, frags...)
}

// names is the Nature author list format: no Oxford comma, and lists
// over five authors cut to the first five plus "et al.".
var names = style.ListFormat{
	TwoSep:   " & ",
	Sep:      ", ",
	FinalSep: " & ",
	Max:      5,
	EtAlKeep: 5,
}

// New builds the Nature style.
func New() *style.Style {
	return &style.Style{
		Name:        Name,
		Description: "Nature: superscript numbered citations, compact references",
		Sort:        style.ByAppearance,
		Labels:      style.SuperscriptLabels,
		Renderers: map[bib.EntryType]style.RenderFunc{
			bib.TypeArticle:       renderArticle,
			bib.TypeBook:          renderBook,
			bib.TypeInProceedings: renderInProceedings,
			bib.TypeMisc:          renderMisc,
		},
	}
}

// authors formats the author list; soft-absent when the entry has none.
func authors(e *bib.Entry) template.Fragment {
	list := e.PersonList(bib.RoleAuthor)
	if len(list) == 0 {
		return template.Nothing()
	}
	return rich(richtext.Text(style.FormatList(list, names)))
}

// doi renders the DOI as a hyperlink whose visible text is the
// "doi:"-prefixed DOI string.
func doi(e *bib.Entry) template.Fragment {
	value, ok := e.Field(bib.FieldDOI)
	if !ok {
		return template.Nothing()
	}
	return template.Link("https://doi.org/"+value, lit("doi:"+value))
}

// Renderers compose space-joined clauses. Author lists go through
// Sentence so a list ending in initials or "et al." keeps exactly one
// terminal period.

// renderArticle formats journal articles:
// Authors. Title. Journal Volume, pages (Year). doi:...
func renderArticle(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, join(" ",
		sentence(authors(e)),
		sentence(fld(bib.FieldTitle)),
		together(
			em(fld(bib.FieldJournal)), lit(" "),
			strong(fld(bib.FieldVolume)),
			opt(lit(", "), fld(bib.FieldPages)),
			lit(" ("), fld(bib.FieldYear), lit(")."),
		),
		opt(doi(e)),
	))
}

// renderBook formats books:
// Authors. Title (Edition edn) (Publisher, Year). doi:...
func renderBook(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, join(" ",
		sentence(authors(e)),
		together(
			em(fld(bib.FieldTitle)),
			opt(lit(" ("), fld(bib.FieldEdition), lit(" edn)")),
			lit(" ("), fld(bib.FieldPublisher), lit(", "), fld(bib.FieldYear), lit(")."),
		),
		opt(doi(e)),
	))
}

// renderInProceedings formats conference papers:
// Authors. Title. in Conference, pages (Year). doi:...
func renderInProceedings(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, join(" ",
		sentence(authors(e)),
		sentence(fld(bib.FieldTitle)),
		together(
			lit("in "), em(fld(bib.FieldBookTitle)),
			opt(lit(", "), fld(bib.FieldPages)),
			lit(" ("), fld(bib.FieldYear), lit(")."),
		),
		opt(doi(e)),
	))
}

// renderMisc formats loose records compactly.
func renderMisc(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, join(" ",
		sentence(authors(e)),
		together(
			em(fld(bib.FieldTitle)),
			opt(lit(". "), fld(bib.FieldHowPublished)),
			opt(lit(" ("), fld(bib.FieldYear), lit(")")),
			lit("."),
		),
		opt(sentence(fld(bib.FieldURL))),
	))
}
