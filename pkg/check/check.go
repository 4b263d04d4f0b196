// Package check runs consistency checks over a bibliography: duplicate
// citation keys, citations with no matching entry, entries never cited,
// and per-type required fields. Checks never mutate the entries.
package check

import (
	"fmt"
	"sort"

	"github.com/citemill/citemill/pkg/bib"
)

// Severity classifies an issue.
type Severity string

const (
	// SeverityError marks issues that make formatting unreliable, such
	// as duplicate keys or citations of undefined keys.
	SeverityError Severity = "error"

	// SeverityWarning marks entries likely to render incompletely.
	SeverityWarning Severity = "warning"

	// SeverityInfo marks observations that need no action, such as
	// entries defined but never cited.
	SeverityInfo Severity = "info"
)

// Issue is one finding from a check run.
type Issue struct {
	Severity Severity
	Key      string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Key, i.Message)
}

// Report collects the issues of one run in a stable order.
type Report struct {
	Issues []Issue
}

// HasErrors reports whether any issue has error severity.
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues at the given severity.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == sev {
			n++
		}
	}
	return n
}

func (r *Report) add(sev Severity, key, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Key:      key,
		Message:  fmt.Sprintf(format, args...),
	})
}

// requiredFields lists the fields a style needs to format each entry
// type. Entries missing one of these will likely fail to render.
var requiredFields = map[bib.EntryType][]string{
	bib.TypeArticle:       {bib.FieldTitle, bib.FieldYear, bib.FieldJournal},
	bib.TypeBook:          {bib.FieldTitle, bib.FieldYear, bib.FieldPublisher},
	bib.TypeInProceedings: {bib.FieldTitle, bib.FieldYear, bib.FieldBookTitle},
	bib.TypeMisc:          {bib.FieldTitle},
}

// Run checks the bibliography. cited is the list of citation keys used
// by the document, in use order; pass nil when no citation information
// is available, which skips the orphan and unused checks.
func Run(entries []*bib.Entry, cited []string) *Report {
	report := &Report{}

	checkDuplicateKeys(report, entries)
	checkRequiredFields(report, entries)
	checkNames(report, entries)
	if cited != nil {
		checkOrphanedCitations(report, entries, cited)
		checkUnusedEntries(report, entries, cited)
	}

	return report
}

// checkDuplicateKeys flags keys defined more than once. Later
// definitions silently shadow earlier ones during lookup, so this is an
// error.
func checkDuplicateKeys(report *Report, entries []*bib.Entry) {
	seen := make(map[string]int)
	for _, e := range entries {
		seen[e.Key]++
	}

	keys := make([]string, 0, len(seen))
	for key, n := range seen {
		if n > 1 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		report.add(SeverityError, key, "defined %d times", seen[key])
	}
}

// checkRequiredFields warns on entries missing the fields their type
// needs to format.
func checkRequiredFields(report *Report, entries []*bib.Entry) {
	for _, e := range entries {
		required, ok := requiredFields[e.Type]
		if !ok {
			report.add(SeverityWarning, e.Key, "unknown entry type %q", e.Type)
			continue
		}
		for _, field := range required {
			if _, ok := e.Field(field); !ok {
				report.add(SeverityWarning, e.Key, "missing required field %q", field)
			}
		}
	}
}

// checkNames warns on entries that carry neither authors nor editors.
// Misc records commonly have no creator, so they are exempt.
func checkNames(report *Report, entries []*bib.Entry) {
	for _, e := range entries {
		if e.Type == bib.TypeMisc {
			continue
		}
		if !e.HasRole(bib.RoleAuthor) && !e.HasRole(bib.RoleEditor) {
			report.add(SeverityWarning, e.Key, "no authors or editors")
		}
	}
}

// checkOrphanedCitations flags cited keys with no matching entry.
func checkOrphanedCitations(report *Report, entries []*bib.Entry, cited []string) {
	defined := make(map[string]bool, len(entries))
	for _, e := range entries {
		defined[e.Key] = true
	}

	reported := make(map[string]bool)
	for _, key := range cited {
		if !defined[key] && !reported[key] {
			report.add(SeverityError, key, "cited but not defined")
			reported[key] = true
		}
	}
}

// checkUnusedEntries notes entries never cited. Unused entries are not
// an error; they may be kept for future use.
func checkUnusedEntries(report *Report, entries []*bib.Entry, cited []string) {
	used := make(map[string]bool, len(cited))
	for _, key := range cited {
		used[key] = true
	}

	for _, e := range entries {
		if !used[e.Key] {
			report.add(SeverityInfo, e.Key, "defined but never cited")
		}
	}
}
