package style

import (
	"slices"
	"strconv"
	"strings"

	"github.com/citemill/citemill/pkg/bib"
)

// sentinelYear sorts undated entries after every dated one.
const sentinelYear = 9999

// ByAppearance keeps entries in the order the caller supplied them,
// i.e. the order in which the citing context first referenced them.
// Discovering that order is the caller's responsibility.
func ByAppearance(entries []*bib.Entry) []*bib.Entry {
	return slices.Clone(entries)
}

// ByAuthorYear orders entries by the first author's last name
// (lower-cased; falling back to the first editor, then the title),
// then by year ascending. Entries with no parseable year sort after all
// dated entries. The sort is stable: entries with equal keys retain
// their original relative order, and entries lacking author, editor,
// and title get an empty key and sort deterministically after all
// named entries.
func ByAuthorYear(entries []*bib.Entry) []*bib.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b *bib.Entry) int {
		an, ay := authorYearKey(a)
		bn, by := authorYearKey(b)
		// Empty name keys always lose to named entries.
		if (an == "") != (bn == "") {
			if an == "" {
				return 1
			}
			return -1
		}
		if c := strings.Compare(an, bn); c != 0 {
			return c
		}
		return ay - by
	})
	return out
}

// authorYearKey computes the comparator key for ByAuthorYear.
func authorYearKey(e *bib.Entry) (string, int) {
	name := ""
	switch {
	case e.HasRole(bib.RoleAuthor):
		name = e.PersonList(bib.RoleAuthor)[0].LastName()
	case e.HasRole(bib.RoleEditor):
		name = e.PersonList(bib.RoleEditor)[0].LastName()
	default:
		name, _ = e.Field(bib.FieldTitle)
	}
	return strings.ToLower(name), entryYear(e)
}

// entryYear parses the year field, returning sentinelYear when the
// field is absent or not numeric.
func entryYear(e *bib.Entry) int {
	v, ok := e.Field(bib.FieldYear)
	if !ok {
		return sentinelYear
	}
	y, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return sentinelYear
	}
	return y
}
