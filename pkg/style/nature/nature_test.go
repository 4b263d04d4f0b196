package nature

import (
	"strings"
	"testing"

	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/richtext"
)

func person(first, last string) bib.Person {
	var given []string
	if first != "" {
		given = strings.Fields(first)
	}
	return bib.MustPerson(given, nil, []string{last})
}

func article() *bib.Entry {
	return &bib.Entry{
		Key:  "lovelace1950",
		Type: bib.TypeArticle,
		Fields: map[string]string{
			bib.FieldTitle:   "Computing machinery and intelligence",
			bib.FieldYear:    "1950",
			bib.FieldJournal: "Mind",
			bib.FieldVolume:  "59",
			bib.FieldPages:   "433-460",
			bib.FieldDOI:     "10.1000/xyz123",
		},
		Persons: map[bib.Role][]bib.Person{
			bib.RoleAuthor: {person("Ada", "Lovelace"), person("Alan Mathison", "Turing")},
		},
	}
}

func TestRenderArticle(t *testing.T) {
	node, err := New().Render(article())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Lovelace, A. & Turing, A. M. Computing machinery and intelligence. Mind 59, 433-460 (1950). doi:10.1000/xyz123"
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderArticleMarkup(t *testing.T) {
	node, err := New().Render(article())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := richtext.HTML(node)
	if !strings.Contains(html, "<em>Mind</em>") {
		t.Errorf("journal not emphasized: %q", html)
	}
	if !strings.Contains(html, "<strong>59</strong>") {
		t.Errorf("volume not bold: %q", html)
	}
	link := `<a href="https://doi.org/10.1000/xyz123">doi:10.1000/xyz123</a>`
	if !strings.Contains(html, link) {
		t.Errorf("DOI link missing: %q", html)
	}
}

func TestRenderBook(t *testing.T) {
	e := &bib.Entry{
		Key:  "knuth1968",
		Type: bib.TypeBook,
		Fields: map[string]string{
			bib.FieldTitle:     "The Art of Computer Programming",
			bib.FieldYear:      "1968",
			bib.FieldEdition:   "3rd",
			bib.FieldPublisher: "Addison-Wesley",
		},
		Persons: map[bib.Role][]bib.Person{
			bib.RoleAuthor: {person("Donald Ervin", "Knuth")},
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Knuth, D. E. The Art of Computer Programming (3rd edn) (Addison-Wesley, 1968)."
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderInProceedings(t *testing.T) {
	e := &bib.Entry{
		Key:  "cook1971",
		Type: bib.TypeInProceedings,
		Fields: map[string]string{
			bib.FieldTitle:     "The complexity of theorem-proving procedures",
			bib.FieldYear:      "1971",
			bib.FieldBookTitle: "Proc. STOC",
			bib.FieldPages:     "151-158",
		},
		Persons: map[bib.Role][]bib.Person{
			bib.RoleAuthor: {person("Stephen A.", "Cook")},
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Cook, S. A. The complexity of theorem-proving procedures. in Proc. STOC, 151-158 (1971)."
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderMisc(t *testing.T) {
	e := &bib.Entry{
		Key:  "goproj",
		Type: bib.TypeMisc,
		Fields: map[string]string{
			bib.FieldTitle:        "The Go Programming Language",
			bib.FieldHowPublished: "Software",
			bib.FieldYear:         "2009",
			bib.FieldURL:          "https://go.dev",
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "The Go Programming Language. Software (2009). https://go.dev."
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestLongAuthorListTruncated(t *testing.T) {
	e := article()
	var list []bib.Person
	for _, last := range []string{"Aa", "Bb", "Cc", "Dd", "Ee", "Ff"} {
		list = append(list, person("X", last))
	}
	e.Persons[bib.RoleAuthor] = list

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := richtext.Plain(node)
	if !strings.HasPrefix(got, "Aa, X., Bb, X., Cc, X., Dd, X., Ee, X. et al. ") {
		t.Errorf("6-author truncation: %q", got)
	}
	if strings.Contains(got, "Ff, X.") {
		t.Errorf("sixth author should be dropped: %q", got)
	}
}
