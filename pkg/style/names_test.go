package style

import (
	"fmt"
	"strings"
	"testing"

	"github.com/citemill/citemill/pkg/bib"
)

func person(first, middle string, last ...string) bib.Person {
	var f, m []string
	if first != "" {
		f = strings.Fields(first)
	}
	if middle != "" {
		m = strings.Fields(middle)
	}
	return bib.MustPerson(f, m, last)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		p    bib.Person
		want string
	}{
		{"FirstAndMiddle", person("John", "Alan", "Smith"), "J. A."},
		{"FirstOnly", person("John", "", "Smith"), "J."},
		{"None", person("", "", "Plato"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initials(tt.p); got != tt.want {
				t.Errorf("Initials() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPerson(t *testing.T) {
	tests := []struct {
		name string
		p    bib.Person
		want string
	}{
		{"Full", person("John", "Alan", "Smith"), "Smith, J. A."},
		{"LastOnly", person("", "", "Plato"), "Plato"},
		{"CompoundLast", person("John", "", "von", "Neumann"), "von Neumann, J."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPerson(tt.p); got != tt.want {
				t.Errorf("FormatPerson() = %q, want %q", got, tt.want)
			}
		})
	}
}

// makePersons builds n distinct single-token authors: A1, A2, ...
func makePersons(n int) []bib.Person {
	out := make([]bib.Person, n)
	for i := range out {
		out[i] = person("", "", fmt.Sprintf("A%d", i+1))
	}
	return out
}

func TestFormatListOxford(t *testing.T) {
	// Oxford-comma format with a K=4 threshold and et-al keeping 2.
	f := ListFormat{TwoSep: " & ", Sep: ", ", FinalSep: ", & ", Max: 4, EtAlKeep: 2}

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"One", 1, "A1"},
		{"TwoNoComma", 2, "A1 & A2"},
		{"Three", 3, "A1, A2, & A3"},
		{"AtThreshold", 4, "A1, A2, A3, & A4"},
		{"OverThreshold", 5, "A1, A2 et al."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatList(makePersons(tt.n), f); got != tt.want {
				t.Errorf("FormatList(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestFormatListNoOxford(t *testing.T) {
	f := ListFormat{TwoSep: " & ", Sep: ", ", FinalSep: " & ", Max: 5, EtAlKeep: 5}

	if got := FormatList(makePersons(3), f); got != "A1, A2 & A3" {
		t.Errorf("FormatList(3) = %q", got)
	}
	if got := FormatList(makePersons(6), f); got != "A1, A2, A3, A4, A5 et al." {
		t.Errorf("FormatList(6) = %q", got)
	}
}

func TestFormatListElideLong(t *testing.T) {
	f := ListFormat{TwoSep: " & ", Sep: ", ", FinalSep: ", & ", Max: 20, ElideLong: true}

	// Exactly at the threshold: full Oxford-comma form, no elision.
	at := FormatList(makePersons(20), f)
	if !strings.HasSuffix(at, ", & A20") || strings.Contains(at, "...") {
		t.Errorf("FormatList(20) = %q", at)
	}

	// Over the threshold: first 19, ellipsis, then the final author.
	over := FormatList(makePersons(25), f)
	if !strings.Contains(over, "A19, ..., A25") {
		t.Errorf("FormatList(25) = %q", over)
	}
	if strings.Contains(over, "A20") {
		t.Errorf("FormatList(25) should elide A20..A24: %q", over)
	}
}

func TestFormatListIdempotent(t *testing.T) {
	f := ListFormat{TwoSep: " & ", Sep: ", ", FinalSep: ", & ", Max: 20, ElideLong: true}
	persons := makePersons(7)
	if FormatList(persons, f) != FormatList(persons, f) {
		t.Error("formatting the same list twice must be byte-identical")
	}
}

func TestFormatEditors(t *testing.T) {
	f := ListFormat{TwoSep: " & ", Sep: ", ", FinalSep: ", & ", Max: 20}

	if got := FormatEditors(makePersons(1), f); got != "A1 (Ed.)" {
		t.Errorf("one editor = %q", got)
	}
	if got := FormatEditors(makePersons(2), f); got != "A1 & A2 (Eds.)" {
		t.Errorf("two editors = %q", got)
	}
	if got := FormatEditors(nil, f); got != "" {
		t.Errorf("no editors = %q", got)
	}
}
