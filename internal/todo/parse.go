package todo

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Parser turns task lines into Items.
type Parser struct {
	// Strict rejects priority-shaped and date-shaped tokens that are not
	// valid instead of treating them as description text.
	Strict bool
}

// Parse parses one task line with the default lenient parser.
func Parse(line string) (Item, error) {
	return Parser{}.Parse(line)
}

// Parse parses one task line.
//
// Fields are consumed from the front of the line in a single pass: the
// completion marker, then the priority, then up to two dates. Once a token
// fails a stage, that stage and every later positional stage are skipped.
func (p Parser) Parse(line string) (Item, error) {
	if !utf8.ValidString(line) {
		return Item{}, &ParseError{Text: line, Kind: ErrMalformed}
	}
	c := &cursor{tokens: strings.Fields(line)}
	if c.done() {
		return Item{}, &ParseError{Text: line, Kind: ErrEmptyLine}
	}

	var item Item
	if c.peek() == "x" {
		item.Completed = true
		c.next()
	}

	if !c.done() {
		tok := c.peek()
		if prio, ok := parsePriority(tok); ok {
			item.Priority = prio
			c.next()
		} else if p.Strict && priorityShaped(tok) {
			return Item{}, &ParseError{Text: tok, Kind: ErrInvalidPriority}
		}
	}

	var dates []*time.Time
	for len(dates) < 2 && !c.done() {
		tok := c.peek()
		d, ok := parseDate(tok)
		if !ok {
			if p.Strict && dateShaped(tok) {
				return Item{}, &ParseError{Text: tok, Kind: ErrInvalidDate}
			}
			break
		}
		dates = append(dates, d)
		c.next()
	}
	switch len(dates) {
	case 2:
		item.CompletionDate = dates[0]
		item.CreationDate = dates[1]
	case 1:
		item.CreationDate = dates[0]
	}

	rest := c.rest()
	item.Description = strings.TrimSpace(strings.Join(rest, " "))
	item.Projects = make(TagSet)
	item.Contexts = make(TagSet)
	for _, word := range rest {
		if len(word) < 2 {
			continue
		}
		switch word[0] {
		case '+':
			item.Projects.Add(word[1:])
		case '@':
			item.Contexts.Add(word[1:])
		}
	}

	return item, nil
}

// cursor walks a token list front to back.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) done() bool     { return c.pos >= len(c.tokens) }
func (c *cursor) peek() string   { return c.tokens[c.pos] }
func (c *cursor) next()          { c.pos++ }
func (c *cursor) rest() []string { return c.tokens[c.pos:] }

// priorityShaped reports whether tok looks like "(?)" with one byte inside.
func priorityShaped(tok string) bool {
	return len(tok) == 3 && tok[0] == '(' && tok[2] == ')'
}

func parsePriority(tok string) (Priority, bool) {
	if !priorityShaped(tok) {
		return NoPriority, false
	}
	p := Priority(tok[1])
	if !p.Valid() {
		return NoPriority, false
	}
	return p, true
}

// dateShaped reports whether tok has the lexical form NNNN-NN-NN.
func dateShaped(tok string) bool {
	if len(tok) != len(DateLayout) {
		return false
	}
	for i := 0; i < len(tok); i++ {
		switch i {
		case 4, 7:
			if tok[i] != '-' {
				return false
			}
		default:
			if tok[i] < '0' || tok[i] > '9' {
				return false
			}
		}
	}
	return true
}

// parseDate accepts only real calendar days written as YYYY-MM-DD.
func parseDate(tok string) (*time.Time, bool) {
	if !dateShaped(tok) {
		return nil, false
	}
	d, err := time.Parse(DateLayout, tok)
	if err != nil {
		return nil, false
	}
	return &d, true
}
