package domain

// Todo is the domain entity (the single source of truth).
// It carries the flat persisted shape directly: the JSON tags below are
// both the data-file format and the /api/todos wire format.
// Does not depend on Gin or the storage layer.
//
// Each record is in exactly one of three states, driven by two
// independent flags:
//
//	Active-Incomplete  <->  Active-Completed   (Toggle)
//	Active-*            ->  Deleted            (SoftDelete)
//	Deleted             ->  Active-*           (Restore; Completed keeps
//	                                            its pre-deletion value)
//	Active-Completed    ->  gone               (PurgeCompleted)
//	Deleted             ->  gone               (PurgeDeleted)
//
// New records start Active-Incomplete. "gone" is terminal: the record is
// removed from the collection and its id is never reused.
type Todo struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	CreatedAt string  `json:"created_at"`
	DeletedAt *string `json:"deleted_at"`
}

// IsDeleted reports whether the record is soft-deleted.
func (t *Todo) IsDeleted() bool {
	return t.DeletedAt != nil
}

// IsActive reports whether the record is live and not yet completed.
func (t *Todo) IsActive() bool {
	return !t.Completed && t.DeletedAt == nil
}

// IsCompleted reports whether the record is live and completed.
// A soft-deleted record keeps its Completed flag but never counts here;
// it belongs to the deleted view until restored or purged.
func (t *Todo) IsCompleted() bool {
	return t.Completed && t.DeletedAt == nil
}

// View names a filter predicate over the record set.
type View string

const (
	ViewAll       View = "all"
	ViewActive    View = "active"
	ViewCompleted View = "completed"
	ViewDeleted   View = "deleted"
)

// Match reports whether the record belongs to the view. Unrecognized
// views behave like ViewAll (everything not deleted) rather than erroring.
func (v View) Match(t *Todo) bool {
	switch v {
	case ViewActive:
		return t.IsActive()
	case ViewCompleted:
		return t.IsCompleted()
	case ViewDeleted:
		return t.IsDeleted()
	default:
		return !t.IsDeleted()
	}
}
