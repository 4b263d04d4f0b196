package apa

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/errors"
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
			bib.FieldNumber:  "236",
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
	want := "Lovelace, A. & Turing, A. M. (1950). Computing machinery and intelligence. Mind, 59(236), 433-460. https://doi.org/10.1000/xyz123"
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderArticleHTML(t *testing.T) {
	node, err := New().Render(article())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := richtext.HTML(node)
	if !strings.Contains(html, "<em>Mind</em>") {
		t.Errorf("journal not emphasized: %q", html)
	}
	link := `<a href="https://doi.org/10.1000/xyz123">https://doi.org/10.1000/xyz123</a>`
	if !strings.Contains(html, link) {
		t.Errorf("DOI link missing: %q", html)
	}
}

func TestRenderArticleOmitsMissingOptionals(t *testing.T) {
	e := article()
	delete(e.Fields, bib.FieldNumber)
	delete(e.Fields, bib.FieldDOI)

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Lovelace, A. & Turing, A. M. (1950). Computing machinery and intelligence. Mind, 59, 433-460."
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderArticleMissingTitle(t *testing.T) {
	e := article()
	delete(e.Fields, bib.FieldTitle)

	_, err := New().Render(e)
	var missing *errors.MissingFieldError
	if !stderrors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingFieldError", err)
	}
	if missing.Key != "lovelace1950" || missing.Field != bib.FieldTitle {
		t.Errorf("error = %+v", missing)
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
	want := "Knuth, D. E. (1968). The Art of Computer Programming (3rd ed.). Addison-Wesley."
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderBookEditorFallback(t *testing.T) {
	e := &bib.Entry{
		Key:  "handbook",
		Type: bib.TypeBook,
		Fields: map[string]string{
			bib.FieldTitle:     "Handbook of Satisfiability",
			bib.FieldYear:      "2009",
			bib.FieldPublisher: "IOS Press",
		},
		Persons: map[bib.Role][]bib.Person{
			bib.RoleEditor: {person("Armin", "Biere"), person("Hans", "van Maaren")},
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := richtext.Plain(node)
	if !strings.HasPrefix(got, "Biere, A. & van Maaren, H. (Eds.) (2009). ") {
		t.Errorf("editor fallback: %q", got)
	}
}

func TestRenderInProceedings(t *testing.T) {
	e := &bib.Entry{
		Key:  "cook1971",
		Type: bib.TypeInProceedings,
		Fields: map[string]string{
			bib.FieldTitle:     "The complexity of theorem-proving procedures",
			bib.FieldYear:      "1971",
			bib.FieldBookTitle: "Proceedings of the Third Annual ACM Symposium on Theory of Computing",
			bib.FieldPages:     "151-158",
			bib.FieldPublisher: "ACM",
		},
		Persons: map[bib.Role][]bib.Person{
			bib.RoleAuthor: {person("Stephen A.", "Cook")},
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "Cook, S. A. (1971). The complexity of theorem-proving procedures. In Proceedings of the Third Annual ACM Symposium on Theory of Computing (pp. 151-158). ACM."
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderMiscWithoutAuthor(t *testing.T) {
	e := &bib.Entry{
		Key:  "dataset",
		Type: bib.TypeMisc,
		Fields: map[string]string{
			bib.FieldTitle:        "Global Temperature Anomalies",
			bib.FieldYear:         "2024",
			bib.FieldHowPublished: "Dataset",
			bib.FieldURL:          "https://example.org/temps",
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "(2024). Global Temperature Anomalies [Dataset]. https://example.org/temps"
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderMiscWithAuthor(t *testing.T) {
	e := &bib.Entry{
		Key:  "blog",
		Type: bib.TypeMisc,
		Fields: map[string]string{
			bib.FieldTitle: "Go Proverbs",
			bib.FieldYear:  "2015",
			bib.FieldURL:   "https://go-proverbs.github.io",
		},
		Persons: map[bib.Role][]bib.Person{
			bib.RoleAuthor: {person("Rob", "Pike")},
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Initials keep a single period before the year parenthetical.
	want := "Pike, R. (2015). Go Proverbs. https://go-proverbs.github.io"
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestRenderMiscAuthorEndsWithPeriod(t *testing.T) {
	e := &bib.Entry{
		Key:  "temps",
		Type: bib.TypeMisc,
		Fields: map[string]string{
			bib.FieldTitle: "Global Temperature Anomalies",
			bib.FieldYear:  "2024",
			bib.FieldURL:   "https://example.org/temps",
		},
		Persons: map[bib.Role][]bib.Person{
			bib.RoleAuthor: {person("", "NASA")},
		},
	}

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// An author block not ending in an initial still closes with a period.
	want := "NASA. (2024). Global Temperature Anomalies. https://example.org/temps"
	if got := richtext.Plain(node); got != want {
		t.Errorf("plain text:\n got %q\nwant %q", got, want)
	}
}

func TestLongAuthorListElided(t *testing.T) {
	e := article()
	var list []bib.Person
	for _, last := range []string{
		"Aa", "Bb", "Cc", "Dd", "Ee", "Ff", "Gg", "Hh", "Ii", "Jj",
		"Kk", "Ll", "Mm", "Nn", "Oo", "Pp", "Qq", "Rr", "Ss", "Tt", "Uu",
	} {
		list = append(list, person("X", last))
	}
	e.Persons[bib.RoleAuthor] = list

	node, err := New().Render(e)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := richtext.Plain(node)
	if !strings.Contains(got, "Ss, X., ..., Uu, X.") {
		t.Errorf("21-author elision: %q", got)
	}
	if strings.Contains(got, "Tt, X.") {
		t.Errorf("20th author should be elided: %q", got)
	}
}
