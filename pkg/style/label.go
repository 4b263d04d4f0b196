package style

import (
	"fmt"
	"iter"

	"github.com/citemill/citemill/pkg/bib"
)

// titleLabelLen bounds the title fallback used when an entry has no
// authors to name in an author-year label.
const titleLabelLen = 20

// AuthorYearLabels yields "LastName, Year" labels: one author's last
// name alone, two joined with " & ", three or more as "First et al.".
// Entries with no authors fall back to the truncated title; a missing
// year renders as "n.d.".
func AuthorYearLabels(ordered []*bib.Entry) iter.Seq[Label] {
	return func(yield func(Label) bool) {
		for _, e := range ordered {
			if !yield(Label{Text: authorYearLabel(e)}) {
				return
			}
		}
	}
}

func authorYearLabel(e *bib.Entry) string {
	name := ""
	if authors := e.PersonList(bib.RoleAuthor); len(authors) > 0 {
		switch len(authors) {
		case 1:
			name = authors[0].LastName()
		case 2:
			name = authors[0].LastName() + " & " + authors[1].LastName()
		default:
			name = authors[0].LastName() + " et al."
		}
	} else {
		title, ok := e.Field(bib.FieldTitle)
		if !ok {
			title = "Unknown"
		}
		name = truncate(title, titleLabelLen)
	}

	year, ok := e.Field(bib.FieldYear)
	if !ok {
		year = "n.d."
	}
	return name + ", " + year
}

// NumericLabels yields sequential "[n]" labels, 1-based, in sorted
// sequence order.
func NumericLabels(ordered []*bib.Entry) iter.Seq[Label] {
	return func(yield func(Label) bool) {
		for i := range ordered {
			if !yield(Label{Text: fmt.Sprintf("[%d]", i+1)}) {
				return
			}
		}
	}
}

// SuperscriptLabels yields sequential bare numbers, 1-based, marked for
// superscript presentation. Glyph rendering is the output target's job.
func SuperscriptLabels(ordered []*bib.Entry) iter.Seq[Label] {
	return func(yield func(Label) bool) {
		for i := range ordered {
			if !yield(Label{Text: fmt.Sprintf("%d", i+1), Superscript: true}) {
				return
			}
		}
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
