package todo

import (
	"sort"
	"time"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

// Priority is a task priority letter. The zero value means no priority.
type Priority byte

// NoPriority is the unset priority.
const NoPriority Priority = 0

// unsetRank sorts after every valid priority.
const unsetRank = 26

// IsSet reports whether a priority is present.
func (p Priority) IsSet() bool {
	return p != NoPriority
}

// Valid reports whether p is a letter in A-Z.
func (p Priority) Valid() bool {
	return p >= 'A' && p <= 'Z'
}

// Rank returns 0 for A through 25 for Z. Unset and invalid priorities rank 26.
func (p Priority) Rank() int {
	if !p.Valid() {
		return unsetRank
	}
	return int(p - 'A')
}

// String returns the priority as written in a task line, e.g. "(A)".
// It returns an empty string for an unset priority.
func (p Priority) String() string {
	if !p.IsSet() {
		return ""
	}
	return "(" + string(rune(p)) + ")"
}

// TagSet is an unordered set of project or context names.
type TagSet map[string]struct{}

// NewTagSet returns a set holding names.
func NewTagSet(names ...string) TagSet {
	s := make(TagSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts name into the set.
func (s TagSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s TagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Equal reports whether both sets hold the same names.
// A nil set equals an empty set.
func (s TagSet) Equal(other TagSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the names in lexical order.
func (s TagSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Item is one task line.
type Item struct {
	Completed      bool
	Priority       Priority
	CompletionDate *time.Time
	CreationDate   *time.Time
	Contexts       TagSet
	Projects       TagSet
	Description    string
}

// Equal reports whether two items hold the same fields.
// Dates compare by calendar day and tag sets compare as sets.
func (it Item) Equal(other Item) bool {
	return it.Completed == other.Completed &&
		it.Priority == other.Priority &&
		sameDate(it.CompletionDate, other.CompletionDate) &&
		sameDate(it.CreationDate, other.CreationDate) &&
		it.Contexts.Equal(other.Contexts) &&
		it.Projects.Equal(other.Projects) &&
		it.Description == other.Description
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Format(DateLayout) == b.Format(DateLayout)
}

// Date returns a pointer to midnight UTC on the given day.
func Date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
