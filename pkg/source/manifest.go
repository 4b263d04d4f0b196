// Package source loads bibliographies from TOML manifest files.
//
// A manifest describes one bibliography:
//
//	[bibliography]
//	name = "thesis"
//
//	[[entry]]
//	key = "lovelace1950"
//	type = "article"
//	authors = ["Lovelace, Ada", "Turing, Alan Mathison"]
//
//	[entry.fields]
//	title = "Computing machinery and intelligence"
//	year = "1950"
//	journal = "Mind"
//
// Person names accept two forms: "Last, First Middle" and
// "First Middle Last". The comma form is unambiguous and preferred for
// multi-token last names.
package source

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/errors"
)

// Bibliography is a parsed manifest: a display name and the entries in
// manifest order.
type Bibliography struct {
	Name    string
	Entries []*bib.Entry
}

// manifest mirrors the TOML document structure.
type manifest struct {
	Bibliography struct {
		Name string `toml:"name"`
	} `toml:"bibliography"`
	Entries []manifestEntry `toml:"entry"`
}

type manifestEntry struct {
	Key     string            `toml:"key"`
	Type    string            `toml:"type"`
	Authors []string          `toml:"authors"`
	Editors []string          `toml:"editors"`
	Fields  map[string]string `toml:"fields"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Bibliography, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read manifest %s", path)
	}
	return Parse(data)
}

// Parse parses manifest bytes. Entry order is preserved; it is the
// appearance order used by appearance-sorted styles.
func Parse(data []byte) (*Bibliography, error) {
	var doc manifest
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}

	b := &Bibliography{Name: doc.Bibliography.Name}
	for i, me := range doc.Entries {
		e, err := buildEntry(i, me)
		if err != nil {
			return nil, err
		}
		b.Entries = append(b.Entries, e)
	}
	return b, nil
}

func buildEntry(i int, me manifestEntry) (*bib.Entry, error) {
	if me.Key == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "entry %d: missing key", i+1)
	}

	typ := bib.EntryType(me.Type)
	if typ == "" {
		typ = bib.TypeMisc
	}

	e := &bib.Entry{
		Key:    me.Key,
		Type:   typ,
		Fields: make(map[string]string, len(me.Fields)),
	}
	for name, value := range me.Fields {
		if value == "" {
			continue
		}
		e.Fields[name] = value
	}

	persons := make(map[bib.Role][]bib.Person)
	for role, names := range map[bib.Role][]string{
		bib.RoleAuthor: me.Authors,
		bib.RoleEditor: me.Editors,
	} {
		for _, name := range names {
			p, err := ParsePersonName(name)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err,
					"entry %q: bad %s name %q", me.Key, role, name)
			}
			persons[role] = append(persons[role], p)
		}
	}
	if len(persons) > 0 {
		e.Persons = persons
	}
	return e, nil
}

// ParsePersonName splits a name string into a Person.
//
// The comma form "Last Names, First Middle..." assigns everything
// before the comma to the last name. The plain form "First Middle Last"
// takes the final token as the last name.
func ParsePersonName(s string) (bib.Person, error) {
	if last, given, ok := strings.Cut(s, ","); ok {
		lastTokens := strings.Fields(last)
		givenTokens := strings.Fields(given)
		var first, middle []string
		if len(givenTokens) > 0 {
			first = givenTokens[:1]
			middle = givenTokens[1:]
		}
		return bib.NewPerson(first, middle, lastTokens)
	}

	tokens := strings.Fields(s)
	switch len(tokens) {
	case 0:
		return bib.NewPerson(nil, nil, nil)
	case 1:
		return bib.NewPerson(nil, nil, tokens)
	default:
		return bib.NewPerson(tokens[:1], tokens[1:len(tokens)-1], tokens[len(tokens)-1:])
	}
}
