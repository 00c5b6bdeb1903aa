package todo

import "sort"

// ListOption configures a List.
type ListOption func(*List)

// WithStrict makes the list parse added and loaded lines in strict mode.
func WithStrict(enabled bool) ListOption {
	return func(l *List) {
		l.parser.Strict = enabled
	}
}

// List is an ordered collection of items. It is not safe for concurrent use.
type List struct {
	items  []Item
	parser Parser
}

// NewList returns an empty list.
func NewList(opts ...ListOption) *List {
	l := &List{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Strict reports whether the list parses lines in strict mode.
func (l *List) Strict() bool {
	return l.parser.Strict
}

// Add parses line and appends the result. On error the list is unchanged.
func (l *List) Add(line string) error {
	item, err := l.parser.Parse(line)
	if err != nil {
		return err
	}
	l.items = append(l.items, item)
	return nil
}

// Append adds already parsed items to the end of the list.
func (l *List) Append(items ...Item) {
	l.items = append(l.items, items...)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Item returns the item at index i.
func (l *List) Item(i int) Item {
	return l.items[i]
}

// Items returns a copy of the items in list order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// SortByPriority orders items from (A) to (Z), with unprioritized items
// last. Items of equal priority keep their relative order.
func (l *List) SortByPriority() {
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i].Priority.Rank() < l.items[j].Priority.Rank()
	})
}

// Filter returns a new list holding the items for which keep returns true.
func (l *List) Filter(keep func(Item) bool) *List {
	out := &List{parser: l.parser}
	for _, item := range l.items {
		if keep(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}
