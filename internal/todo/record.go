package todo

// Record is the structured form of an item used by exports and schema
// validation. Dates are YYYY-MM-DD strings and tags are sorted.
type Record struct {
	Completed      bool     `json:"completed" yaml:"completed"`
	Priority       string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	CompletionDate string   `json:"completion_date,omitempty" yaml:"completion_date,omitempty"`
	CreationDate   string   `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`
	Contexts       []string `json:"contexts" yaml:"contexts"`
	Projects       []string `json:"projects" yaml:"projects"`
	Description    string   `json:"description" yaml:"description"`
	Line           string   `json:"line" yaml:"line"`
}

// Record returns the structured form of the item. Line is empty when the
// item cannot be formatted.
func (it Item) Record() Record {
	r := Record{
		Completed:   it.Completed,
		Contexts:    it.Contexts.Sorted(),
		Projects:    it.Projects.Sorted(),
		Description: it.Description,
		Line:        it.String(),
	}
	if it.Priority.IsSet() {
		r.Priority = string(rune(it.Priority))
	}
	if it.CompletionDate != nil {
		r.CompletionDate = it.CompletionDate.Format(DateLayout)
	}
	if it.CreationDate != nil {
		r.CreationDate = it.CreationDate.Format(DateLayout)
	}
	return r
}

// Records returns the structured form of every item in list order.
func (l *List) Records() []Record {
	out := make([]Record, len(l.items))
	for i, item := range l.items {
		out[i] = item.Record()
	}
	return out
}
