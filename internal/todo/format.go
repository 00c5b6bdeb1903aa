package todo

import "strings"

// Format renders the item as its canonical task line.
//
// Segments are separated by one space and unset fields are omitted:
// "x", "(P)", the dates, then the trimmed description. Tags are not
// appended because they are already part of the description.
func (it Item) Format() (string, error) {
	parts := make([]string, 0, 5)
	if it.Completed {
		parts = append(parts, "x")
	}
	if it.Priority.IsSet() {
		if !it.Priority.Valid() {
			return "", &FormatError{Index: -1, Err: ErrInvalidPriority}
		}
		parts = append(parts, it.Priority.String())
	}

	switch {
	case it.CompletionDate != nil && it.CreationDate != nil:
		parts = append(parts,
			it.CompletionDate.Format(DateLayout),
			it.CreationDate.Format(DateLayout))
	case it.CreationDate != nil:
		parts = append(parts, it.CreationDate.Format(DateLayout))
	case it.CompletionDate != nil:
		return "", &FormatError{Index: -1, Err: ErrCompletionWithoutCreation}
	}

	if desc := strings.TrimSpace(it.Description); desc != "" {
		parts = append(parts, desc)
	}
	return strings.Join(parts, " "), nil
}

// String returns the canonical task line, or an empty string if the item
// cannot be formatted.
func (it Item) String() string {
	line, err := it.Format()
	if err != nil {
		return ""
	}
	return line
}

// MarshalText implements encoding.TextMarshaler.
func (it Item) MarshalText() ([]byte, error) {
	line, err := it.Format()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the lenient parser.
func (it *Item) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*it = parsed
	return nil
}
