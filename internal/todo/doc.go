// Package todo parses, formats, and persists line-oriented task lists.
//
// Each line of a task file holds one task:
//
//	x (A) 2024-03-20 2024-01-01 Measure space for +kitchen @home
//
// Fields are recognized strictly from the front of the line, in order:
//
//  1. "x" as the first token marks the task completed.
//  2. "(A)".."(Z)" in the next position is the priority.
//  3. One or two "YYYY-MM-DD" dates. Two dates are completion then creation;
//     a single date is the creation date.
//
// Everything after that is the description. Tokens starting with "+" name
// projects and tokens starting with "@" name contexts; they are collected
// into sets but also stay in the description text.
//
// A token only counts as a positional field if every token before it was
// already one. "2023-12-30 (F)" has a creation date and the description
// "(F)", not a priority.
//
// # Round trip
//
// For every Item returned by Parse, Parse(item.String()) returns an equal
// Item. Runs of whitespace inside the description collapse to one space.
//
// # Strict mode
//
// The default parser lets malformed priority-like tokens such as "(a)" and
// date-shaped tokens such as "2024-13-01" fall through to the description.
// Parser{Strict: true} rejects them with ErrInvalidPriority and
// ErrInvalidDate instead.
//
// # Files
//
// Load reads a file line by line, skipping blank lines. The first line that
// fails to parse aborts the load. Save writes the whole list to a temporary
// file next to the destination and renames it into place, so readers never
// see a partially written file.
package todo
