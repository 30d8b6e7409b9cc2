package service

import (
	"strings"
	"sync/atomic"
	"time"

	"tasklite/internal/domain"
	"tasklite/internal/store"
)

// TodoService applies the todo operations to a loaded collection and
// returns the collection to persist; saving is the caller's concern.
// Operations never error: an id that matches nothing, or a record in the
// wrong state, leaves the collection unchanged.
//
// The service holds no record state between calls. The one thing it does
// remember is the highest id it has seen: purging the record that holds
// the current maximum would otherwise free its id for reuse, and the
// data file has nowhere to note that the id is spent.
type TodoService struct {
	lastID atomic.Int64
}

func NewTodoService() *TodoService {
	return &TodoService{}
}

// Counts is the per-view tally shown on the list page tabs.
type Counts struct {
	All       int
	Active    int
	Completed int
	Deleted   int
}

// Add prepends a new incomplete record built from text, so the newest
// entry renders first. Text is trimmed; blank text leaves the collection
// unchanged.
func (s *TodoService) Add(items []domain.Todo, text string) []domain.Todo {
	text = strings.TrimSpace(text)
	if text == "" {
		return items
	}
	todo := domain.Todo{
		ID:        s.allocateID(items),
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		DeletedAt: nil,
	}
	return append([]domain.Todo{todo}, items...)
}

// Toggle flips the completion flag of the record with the given id.
// Soft-deleted records cannot be toggled.
func (s *TodoService) Toggle(items []domain.Todo, id int) []domain.Todo {
	for i := range items {
		if items[i].ID == id && !items[i].IsDeleted() {
			items[i].Completed = !items[i].Completed
			break
		}
	}
	return items
}

// SoftDelete marks the record with the given id as deleted, stamping the
// deletion time. The record keeps its completion flag for a later
// Restore.
func (s *TodoService) SoftDelete(items []domain.Todo, id int) []domain.Todo {
	for i := range items {
		if items[i].ID == id && !items[i].IsDeleted() {
			now := time.Now().UTC().Format(time.RFC3339)
			items[i].DeletedAt = &now
			break
		}
	}
	return items
}

// Restore brings a soft-deleted record back, completion flag intact.
// Active records are left alone.
func (s *TodoService) Restore(items []domain.Todo, id int) []domain.Todo {
	for i := range items {
		if items[i].ID == id && items[i].IsDeleted() {
			items[i].DeletedAt = nil
			break
		}
	}
	return items
}

// PurgeCompleted permanently removes every completed record that is not
// soft-deleted. Completed records sitting in the trash survive; they
// belong to PurgeDeleted.
func (s *TodoService) PurgeCompleted(items []domain.Todo) []domain.Todo {
	s.observe(items)
	kept := make([]domain.Todo, 0, len(items))
	for _, t := range items {
		if !t.IsCompleted() {
			kept = append(kept, t)
		}
	}
	return kept
}

// PurgeDeleted permanently removes every soft-deleted record, emptying
// the trash.
func (s *TodoService) PurgeDeleted(items []domain.Todo) []domain.Todo {
	s.observe(items)
	kept := make([]domain.Todo, 0, len(items))
	for _, t := range items {
		if !t.IsDeleted() {
			kept = append(kept, t)
		}
	}
	return kept
}

// FilterView returns the records visible under the named view, relative
// order preserved. The result is always a fresh, non-nil slice.
func (s *TodoService) FilterView(items []domain.Todo, view domain.View) []domain.Todo {
	out := make([]domain.Todo, 0, len(items))
	for i := range items {
		if view.Match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// CountViews tallies how many records each view would show.
func (s *TodoService) CountViews(items []domain.Todo) Counts {
	var c Counts
	for i := range items {
		t := &items[i]
		if t.IsDeleted() {
			c.Deleted++
			continue
		}
		c.All++
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// allocateID hands out ids above both the current maximum and every id
// this process has already seen, so purging the newest record does not
// put its id back into circulation.
func (s *TodoService) allocateID(items []domain.Todo) int {
	id := store.NextID(items)
	for {
		last := s.lastID.Load()
		if int64(id) <= last {
			id = int(last) + 1
		}
		if s.lastID.CompareAndSwap(last, int64(id)) {
			return id
		}
	}
}

// observe raises the id watermark to the collection's current maximum.
// The purge operations call it before dropping records.
func (s *TodoService) observe(items []domain.Todo) {
	max := int64(store.NextID(items) - 1)
	for {
		last := s.lastID.Load()
		if max <= last || s.lastID.CompareAndSwap(last, max) {
			return
		}
	}
}
