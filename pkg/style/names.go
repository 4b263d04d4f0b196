package style

import (
	"strings"

	"github.com/citemill/citemill/pkg/bib"
)

// ListFormat parameterizes how a style joins a list of formatted names.
// Each built-in style owns one ListFormat; the machinery here is shared
// because initials and "Last, F. M." are common to all of them.
type ListFormat struct {
	// TwoSep joins exactly two names, with no comma (" & " or " and ").
	TwoSep string

	// Sep separates names in lists of three or more (usually ", ").
	Sep string

	// FinalSep precedes the last name in lists of three up to Max
	// names. Styles with an Oxford comma use ", & " or ", and ";
	// styles without use " & ".
	FinalSep string

	// Max is the threshold K: lists longer than Max are truncated.
	Max int

	// EtAlKeep is how many names are kept before " et al." when a list
	// exceeds Max and ElideLong is unset.
	EtAlKeep int

	// ElideLong switches truncation to the long-list form: the first
	// Max-1 names, an ellipsis marker, then the final name, preserving
	// both context and the closing author.
	ElideLong bool
}

// Initials formats a person's given-name tokens as initials:
// first character of each token, separated by ". ", terminated by ".".
// Returns "" when the person has no given names.
func Initials(p bib.Person) string {
	var parts []string
	for _, tok := range p.GivenNames() {
		runes := []rune(tok)
		if len(runes) == 0 {
			continue
		}
		parts = append(parts, string(runes[0]))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

// FormatPerson formats one name as "Last, F. M.". A person with no
// given names yields the last name alone, with no trailing comma.
func FormatPerson(p bib.Person) string {
	initials := Initials(p)
	if initials == "" {
		return p.LastName()
	}
	return p.LastName() + ", " + initials
}

// FormatList formats an ordered person list according to f:
//
//	1 name            that name, unchanged
//	2 names           joined with TwoSep, no comma
//	3..Max names      Sep-joined with FinalSep before the last
//	more than Max     first EtAlKeep names plus " et al.", or the
//	                  elided long form when ElideLong is set
func FormatList(persons []bib.Person, f ListFormat) string {
	names := make([]string, len(persons))
	for i, p := range persons {
		names[i] = FormatPerson(p)
	}

	n := len(names)
	switch {
	case n == 0:
		return ""
	case n == 1:
		return names[0]
	case n == 2:
		return names[0] + f.TwoSep + names[1]
	case n <= f.Max:
		return strings.Join(names[:n-1], f.Sep) + f.FinalSep + names[n-1]
	case f.ElideLong:
		elided := append(names[:f.Max-1:f.Max-1], "...", names[n-1])
		return strings.Join(elided, f.Sep)
	default:
		return strings.Join(names[:f.EtAlKeep], f.Sep) + " et al."
	}
}

// FormatEditors formats an editor list and appends the "(Ed.)" suffix,
// pluralized to "(Eds.)" for more than one editor.
func FormatEditors(persons []bib.Person, f ListFormat) string {
	if len(persons) == 0 {
		return ""
	}
	suffix := " (Ed.)"
	if len(persons) > 1 {
		suffix = " (Eds.)"
	}
	return FormatList(persons, f) + suffix
}
