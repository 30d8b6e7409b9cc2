package dto

import (
	"time"

	"tasklite/internal/domain"
)

// displayTime is the fixed list-view timestamp format: day/month
// hour:minute, no year, no locale.
const displayTime = "02/01 15:04"

// timeLayouts are the accepted stored forms. New records are written as
// RFC3339 UTC; the zone-less layout keeps previously written files
// rendering.
var timeLayouts = []string{
	time.RFC3339Nano,      // with fractional seconds
	time.RFC3339,          // 2006-01-02T15:04:05Z07:00
	"2006-01-02T15:04:05", // zone-less
}

// FormatTimestamp renders a stored timestamp for display. Empty in,
// empty out; a value no layout parses comes back verbatim rather than
// erroring.
func FormatTimestamp(ts string) string {
	if ts == "" {
		return ""
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, ts); err == nil {
			return parsed.Format(displayTime)
		}
	}
	return ts
}

// TodoView is a Todo decorated with display-formatted timestamps for the
// HTML template. The stored fields pass through untouched.
type TodoView struct {
	ID           int
	Text         string
	Completed    bool
	CreatedAt    string
	DeletedAt    *string
	CreatedAtFmt string
	DeletedAtFmt string
}

func NewTodoView(t domain.Todo) TodoView {
	v := TodoView{
		ID:           t.ID,
		Text:         t.Text,
		Completed:    t.Completed,
		CreatedAt:    t.CreatedAt,
		DeletedAt:    t.DeletedAt,
		CreatedAtFmt: FormatTimestamp(t.CreatedAt),
	}
	if t.DeletedAt != nil {
		v.DeletedAtFmt = FormatTimestamp(*t.DeletedAt)
	}
	return v
}

// NewTodoViews maps a whole collection. The result is never nil, so an
// empty collection renders as an empty list.
func NewTodoViews(items []domain.Todo) []TodoView {
	out := make([]TodoView, 0, len(items))
	for _, t := range items {
		out = append(out, NewTodoView(t))
	}
	return out
}
