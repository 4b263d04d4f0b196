package style

import (
	"slices"
	"testing"

	"github.com/citemill/citemill/pkg/bib"
)

func collect(ordered []*bib.Entry, fn LabelFunc) []Label {
	var out []Label
	for l := range fn(ordered) {
		out = append(out, l)
	}
	return out
}

func TestAuthorYearLabels(t *testing.T) {
	tests := []struct {
		name  string
		entry *bib.Entry
		want  string
	}{
		{"OneAuthor", entry("a", "2020", "Smith"), "Smith, 2020"},
		{"TwoAuthors", entry("b", "2019", "Smith", "Jones"), "Smith & Jones, 2019"},
		{"ThreeAuthors", entry("c", "2021", "Smith", "Jones", "Lee"), "Smith et al., 2021"},
		{"SixAuthors", entry("d", "2021", "A", "B", "C", "D", "E", "F"), "A et al., 2021"},
		{"NoYear", entry("e", "", "Smith"), "Smith, n.d."},
		{
			"NoAuthorTruncatedTitle",
			func() *bib.Entry {
				e := entry("f", "")
				e.Fields[bib.FieldTitle] = "A Very Long Title That Keeps Going"
				return e
			}(),
			"A Very Long Title Th, n.d.",
		},
		{
			"NoAuthorNoTitle",
			entry("g", ""),
			"Unknown, n.d.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect([]*bib.Entry{tt.entry}, AuthorYearLabels)
			if len(got) != 1 || got[0].Text != tt.want {
				t.Errorf("label = %v, want %q", got, tt.want)
			}
			if got[0].Superscript {
				t.Error("author-year labels are not superscript")
			}
		})
	}
}

func TestNumericLabels(t *testing.T) {
	ordered := []*bib.Entry{entry("a", "2021"), entry("b", "2019"), entry("c", "2020")}
	got := collect(ordered, NumericLabels)

	var texts []string
	for _, l := range got {
		texts = append(texts, l.Text)
	}
	if !slices.Equal(texts, []string{"[1]", "[2]", "[3]"}) {
		t.Errorf("labels = %v", texts)
	}
}

func TestSuperscriptLabels(t *testing.T) {
	ordered := []*bib.Entry{entry("a", ""), entry("b", "")}
	got := collect(ordered, SuperscriptLabels)

	if len(got) != 2 || got[0].Text != "1" || got[1].Text != "2" {
		t.Errorf("labels = %v", got)
	}
	for _, l := range got {
		if !l.Superscript {
			t.Errorf("label %q should be marked superscript", l.Text)
		}
	}
}

func TestLabelsIdempotent(t *testing.T) {
	ordered := []*bib.Entry{
		entry("a", "2020", "Smith"),
		entry("b", "2019", "Jones", "Lee"),
	}
	first := collect(ordered, AuthorYearLabels)
	second := collect(ordered, AuthorYearLabels)
	if !slices.Equal(first, second) {
		t.Errorf("recomputed labels differ: %v vs %v", first, second)
	}
}

func TestLabelsLazy(t *testing.T) {
	ordered := []*bib.Entry{entry("a", ""), entry("b", ""), entry("c", "")}

	// Breaking out of the loop early must stop the producer cleanly.
	count := 0
	for range NumericLabels(ordered) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("consumed %d labels, want 2", count)
	}
}
