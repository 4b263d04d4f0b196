// Package ieee implements the IEEE citation style: numbered "[n]"
// labels, references in order of appearance, quoted article titles,
// and DOIs shown as bare DOI strings behind a "doi:" literal.
package ieee

import (
	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/richtext"
	"github.com/citemill/citemill/pkg/style"
	"github.com/citemill/citemill/pkg/template"
)

// Name is the registry identifier for this style.
const Name = "ieee"

var (
	lit      = template.Literal
	fld      = template.Field
	opt      = template.Optional
	rich     = template.Rich
	together = template.Together
	sentence = template.Sentence
)

func em(frags ...template.Fragment) template.Fragment {
	return template.Tag(richtext.KindEmph, frags...)
}

// names is the IEEE author list format: "and" conjunctions with an
// Oxford comma, and lists over six authors cut to the first author
// plus "et al.".
var names = style.ListFormat{
	TwoSep:   " and ",
	Sep:      ", ",
	FinalSep: ", and ",
	Max:      6,
	EtAlKeep: 1,
}

// New builds the IEEE style.
func New() *style.Style {
	return &style.Style{
		Name:        Name,
		Description: "IEEE: numbered citations in appearance order",
		Sort:        style.ByAppearance,
		Labels:      style.NumericLabels,
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

// doi renders the DOI as a hyperlink whose visible text is the bare DOI
// string; the "doi: " prefix is supplied by the surrounding template.
func doi(e *bib.Entry) template.Fragment {
	value, ok := e.Field(bib.FieldDOI)
	if !ok {
		return template.Nothing()
	}
	return template.Link("https://doi.org/"+value, lit(value))
}

// renderArticle formats journal articles:
// Author(s), "Title," Journal, vol. X, no. Y, pp. Z, Year, doi: ...
func renderArticle(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, sentence(together(
		authors(e), lit(", "),
		lit(`"`), fld(bib.FieldTitle), lit(`," `),
		em(fld(bib.FieldJournal)),
		opt(lit(", vol. "), fld(bib.FieldVolume)),
		opt(lit(", no. "), fld(bib.FieldNumber)),
		opt(lit(", pp. "), fld(bib.FieldPages)),
		lit(", "), fld(bib.FieldYear),
		opt(lit(", doi: "), doi(e)),
	)))
}

// renderBook formats books:
// Author(s), Title, Edition ed. City: Publisher, Year.
func renderBook(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, sentence(together(
		authors(e), lit(", "),
		em(fld(bib.FieldTitle)),
		opt(lit(", "), fld(bib.FieldEdition), lit(" ed")),
		lit(". "),
		opt(fld(bib.FieldAddress), lit(": ")),
		fld(bib.FieldPublisher),
		lit(", "), fld(bib.FieldYear),
	)))
}

// renderInProceedings formats conference papers:
// Author(s), "Title," in Conference, Year, pp. Z, doi: ...
func renderInProceedings(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, sentence(together(
		authors(e), lit(", "),
		lit(`"`), fld(bib.FieldTitle), lit(`," in `),
		em(fld(bib.FieldBookTitle)),
		lit(", "), fld(bib.FieldYear),
		opt(lit(", pp. "), fld(bib.FieldPages)),
		opt(lit(", doi: "), doi(e)),
	)))
}

// renderMisc formats websites, datasets, software, and similar records.
func renderMisc(e *bib.Entry) (richtext.Node, error) {
	return template.Render(e, sentence(together(
		opt(authors(e), lit(", ")),
		fld(bib.FieldTitle),
		opt(lit(", "), fld(bib.FieldHowPublished)),
		opt(lit(", "), fld(bib.FieldYear)),
		opt(lit(". Available: "), fld(bib.FieldURL)),
		opt(lit(". Accessed: "), fld(bib.FieldNote)),
	)))
}
