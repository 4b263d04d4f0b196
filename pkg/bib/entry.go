package bib

// Role identifies a person list attached to an entry.
type Role string

// Roles recognized by the built-in styles.
const (
	RoleAuthor Role = "author"
	RoleEditor Role = "editor"
)

// EntryType tags the kind of bibliographic record.
// The set is open: styles register renderers per type, and an entry
// whose type has no renderer fails with an unsupported-type error.
type EntryType string

// Entry types covered by the built-in styles.
const (
	TypeArticle       EntryType = "article"
	TypeBook          EntryType = "book"
	TypeInProceedings EntryType = "inproceedings"
	TypeMisc          EntryType = "misc"
)

// Well-known field names. Styles look fields up by name, so these are
// conventions rather than an exhaustive schema.
const (
	FieldTitle        = "title"
	FieldYear         = "year"
	FieldJournal      = "journal"
	FieldVolume       = "volume"
	FieldNumber       = "number"
	FieldPages        = "pages"
	FieldPublisher    = "publisher"
	FieldEdition      = "edition"
	FieldBookTitle    = "booktitle"
	FieldAddress      = "address"
	FieldDOI          = "doi"
	FieldURL          = "url"
	FieldHowPublished = "howpublished"
	FieldNote         = "note"
)

// Entry is one bibliographic record: a unique citation key, a type tag,
// string-valued fields, and ordered person lists per role. Person order
// is meaningful: first-author position drives labels and name formatting.
//
// Entries are input to the engine and are never mutated by it. Callers
// should treat an Entry as read-only after construction.
type Entry struct {
	Key     string
	Type    EntryType
	Fields  map[string]string
	Persons map[Role][]Person
}

// Field returns the value of the named field and whether it is present.
func (e *Entry) Field(name string) (string, bool) {
	v, ok := e.Fields[name]
	return v, ok
}

// PersonList returns the ordered persons for a role, or nil when the
// role is absent. The returned slice is shared; callers must not modify it.
func (e *Entry) PersonList(role Role) []Person {
	return e.Persons[role]
}

// HasRole reports whether the entry carries a non-empty person list
// for the given role.
func (e *Entry) HasRole(role Role) bool {
	return len(e.Persons[role]) > 0
}
