package bib

import (
	"fmt"
	"strings"
)

// Person represents one author or editor name, split into ordered
// first, middle, and last name tokens. A Person always has at least
// one last name token; construction enforces this.
//
// Person values are immutable: the constructor copies its inputs and
// accessors return fresh slices.
type Person struct {
	first  []string
	middle []string
	last   []string
}

// NewPerson builds a Person from name token lists.
// Returns an error if last contains no tokens.
func NewPerson(first, middle, last []string) (Person, error) {
	if len(last) == 0 {
		return Person{}, fmt.Errorf("person must have at least one last name token")
	}
	return Person{
		first:  cloneTokens(first),
		middle: cloneTokens(middle),
		last:   cloneTokens(last),
	}, nil
}

// MustPerson is like NewPerson but panics on invalid input.
// Intended for tests and fixed fixtures.
func MustPerson(first, middle, last []string) Person {
	p, err := NewPerson(first, middle, last)
	if err != nil {
		panic(err)
	}
	return p
}

// FirstNames returns a copy of the first name tokens.
func (p Person) FirstNames() []string { return cloneTokens(p.first) }

// MiddleNames returns a copy of the middle name tokens.
func (p Person) MiddleNames() []string { return cloneTokens(p.middle) }

// LastNames returns a copy of the last name tokens.
func (p Person) LastNames() []string { return cloneTokens(p.last) }

// GivenNames returns first name tokens followed by middle name tokens.
// This is the sequence initials are derived from.
func (p Person) GivenNames() []string {
	out := make([]string, 0, len(p.first)+len(p.middle))
	out = append(out, p.first...)
	out = append(out, p.middle...)
	return out
}

// LastName returns the last name tokens joined with spaces
// (e.g., "van der Berg").
func (p Person) LastName() string { return strings.Join(p.last, " ") }

// String returns a debug representation of the name.
func (p Person) String() string {
	given := strings.Join(p.GivenNames(), " ")
	if given == "" {
		return p.LastName()
	}
	return p.LastName() + ", " + given
}

func cloneTokens(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
