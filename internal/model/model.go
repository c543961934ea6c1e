package model

import (
	"fmt"
	"time"
)

// DueDateLayout is the only accepted due-date format.
const DueDateLayout = "2006-01-02"

// CreatedAtLayout round-trips through JSON and sorts naturally.
const CreatedAtLayout = time.RFC3339

type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
	SeverityInfo     Severity = "Info"
)

// Glyph returns the urgency marker rendered next to a todo title.
func (s Severity) Glyph() string {
	switch s {
	case SeverityCritical:
		return "!!!"
	case SeverityHigh:
		return "!!"
	case SeverityMedium:
		return "!"
	default:
		return ""
	}
}

type Note struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	Tags      []string `json:"tags"`
}

func NewNote(title string, createdAt time.Time) Note {
	return Note{
		Title:     title,
		CreatedAt: createdAt.Format(CreatedAtLayout),
		Tags:      []string{},
	}
}

// AddTag inserts tag unless it is already present. Insertion order is kept.
func (n *Note) AddTag(tag string) {
	for _, t := range n.Tags {
		if t == tag {
			return
		}
	}
	n.Tags = append(n.Tags, tag)
}

// RemoveTag removes every occurrence of tag.
func (n *Note) RemoveTag(tag string) {
	kept := n.Tags[:0]
	for _, t := range n.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	n.Tags = kept
}

type Todo struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	Completed bool     `json:"completed"`
	Tags      []string `json:"tags"`
	DueDate   *string  `json:"due_date"`
	Severity  Severity `json:"severity"`
}

func NewTodo(title string, createdAt time.Time) Todo {
	return Todo{
		Title:     title,
		CreatedAt: createdAt.Format(CreatedAtLayout),
		Tags:      []string{},
		Severity:  SeverityMedium,
	}
}

func (t *Todo) AddTag(tag string) {
	for _, existing := range t.Tags {
		if existing == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
}

func (t *Todo) RemoveTag(tag string) {
	kept := t.Tags[:0]
	for _, existing := range t.Tags {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	t.Tags = kept
}

// SetDueDate validates and stores a YYYY-MM-DD due date.
// The todo is left unchanged when the date does not parse.
func (t *Todo) SetDueDate(date string) error {
	if _, err := time.ParseInLocation(DueDateLayout, date, time.Local); err != nil {
		return fmt.Errorf("invalid due date %q: %w", date, err)
	}
	t.DueDate = &date
	return nil
}

func (t *Todo) SetSeverity(s Severity) {
	t.Severity = s
}

// IsOverdue reports whether the due date is strictly before today.
// Completed todos and todos with absent or malformed due dates are never overdue.
func (t *Todo) IsOverdue() bool {
	return t.OverdueAt(time.Now())
}

// OverdueAt is IsOverdue against an explicit clock.
func (t *Todo) OverdueAt(now time.Time) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	due, err := time.ParseInLocation(DueDateLayout, *t.DueDate, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// Document is the persisted aggregate: both collections always travel together.
type Document struct {
	Notes []Note `json:"notes"`
	Todos []Todo `json:"todos"`
}

func NewDocument() *Document {
	return &Document{Notes: []Note{}, Todos: []Todo{}}
}
