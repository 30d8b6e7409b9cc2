package domain_test

import (
	"testing"

	"tasklite/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestStatePredicates(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	active := domain.Todo{ID: 1, Text: "a", CreatedAt: "2026-08-20T09:00:00Z"}
	completed := domain.Todo{ID: 2, Text: "b", Completed: true, CreatedAt: "2026-08-20T09:00:00Z"}
	deleted := domain.Todo{ID: 3, Text: "c", CreatedAt: "2026-08-20T09:00:00Z", DeletedAt: strptr("2026-08-20T10:00:00Z")}

	assert.True(active.IsActive())
	assert.False(active.IsCompleted())
	assert.False(active.IsDeleted())

	assert.False(completed.IsActive())
	assert.True(completed.IsCompleted())
	assert.False(completed.IsDeleted())

	assert.False(deleted.IsActive())
	assert.False(deleted.IsCompleted())
	assert.True(deleted.IsDeleted())
}

func TestDeletedCompletedRecordIsNeitherActiveNorCompleted(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	// completion is kept through deletion but the record counts as deleted only
	trashed := domain.Todo{ID: 4, Text: "d", Completed: true, CreatedAt: "2026-08-20T09:00:00Z", DeletedAt: strptr("2026-08-20T10:00:00Z")}

	assert.False(trashed.IsActive())
	assert.False(trashed.IsCompleted())
	assert.True(trashed.IsDeleted())
}

func TestViewMatch(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	active := domain.Todo{ID: 1, Text: "a"}
	completed := domain.Todo{ID: 2, Text: "b", Completed: true}
	deleted := domain.Todo{ID: 3, Text: "c", DeletedAt: strptr("2026-08-20T10:00:00Z")}

	assert.True(domain.ViewActive.Match(&active))
	assert.False(domain.ViewActive.Match(&completed))

	assert.True(domain.ViewCompleted.Match(&completed))
	assert.False(domain.ViewCompleted.Match(&deleted))

	assert.True(domain.ViewDeleted.Match(&deleted))
	assert.False(domain.ViewDeleted.Match(&active))

	assert.True(domain.ViewAll.Match(&active))
	assert.True(domain.ViewAll.Match(&completed))
	assert.False(domain.ViewAll.Match(&deleted))
}

func TestUnknownViewBehavesLikeAll(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	active := domain.Todo{ID: 1, Text: "a"}
	deleted := domain.Todo{ID: 3, Text: "c", DeletedAt: strptr("2026-08-20T10:00:00Z")}

	bogus := domain.View("overdue")
	assert.True(bogus.Match(&active))
	assert.False(bogus.Match(&deleted))
}
