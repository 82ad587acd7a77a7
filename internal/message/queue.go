// Package message provides the append-only log of user-facing game text.
package message

import "strings"

// Queue is an append-only list of message lines.
type Queue struct {
	lines []string
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{lines: make([]string, 0)}
}

// Append adds a line to the end of the queue.
func (q *Queue) Append(line string) {
	q.lines = append(q.lines, line)
}

// Len returns the number of lines appended so far.
func (q *Queue) Len() int {
	return len(q.lines)
}

// Lines returns a copy of every line in the order appended.
func (q *Queue) Lines() []string {
	out := make([]string, len(q.lines))
	copy(out, q.lines)
	return out
}

// Since returns the lines appended after the first n.
func (q *Queue) Since(n int) []string {
	if n < 0 {
		n = 0
	}
	if n >= len(q.lines) {
		return nil
	}
	out := make([]string, len(q.lines)-n)
	copy(out, q.lines[n:])
	return out
}

// Last returns up to n of the most recent lines, oldest first.
func (q *Queue) Last(n int) []string {
	return q.Since(len(q.lines) - n)
}

// String joins all lines with newlines.
func (q *Queue) String() string {
	return strings.Join(q.lines, "\n")
}
