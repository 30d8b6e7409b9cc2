package service_test

import (
	"testing"
	"time"

	"tasklite/internal/domain"
	"tasklite/internal/service"
	"tasklite/internal/store"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

// seed returns one record in each state: active, completed, deleted.
func seed() []domain.Todo {
	return []domain.Todo{
		{ID: 3, Text: "write report", Completed: false, CreatedAt: "2026-08-20T09:00:00Z", DeletedAt: nil},
		{ID: 2, Text: "review patch", Completed: true, CreatedAt: "2026-08-19T15:30:00Z", DeletedAt: nil},
		{ID: 1, Text: "old note", Completed: false, CreatedAt: "2026-08-18T08:00:00Z", DeletedAt: strptr("2026-08-19T10:00:00Z")},
	}
}

func TestAddPrependsNewRecord(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := svc.Add(seed(), "  buy milk  ")

	assert.Len(items, 4)
	assert.Equal(4, items[0].ID)
	assert.Equal("buy milk", items[0].Text)
	assert.False(items[0].Completed)
	assert.Nil(items[0].DeletedAt)

	_, err := time.Parse(time.RFC3339, items[0].CreatedAt)
	assert.NoError(err)

	active := svc.FilterView(items, domain.ViewActive)
	assert.Equal("buy milk", active[0].Text)
}

func TestAddBlankTextIsNoOp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	assert.Equal(seed(), svc.Add(seed(), "   "))
	assert.Equal(seed(), svc.Add(seed(), ""))
}

func TestToggleFlipsCompletion(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := svc.Toggle(seed(), 3)
	assert.True(items[0].Completed)

	items = svc.Toggle(items, 3)
	assert.False(items[0].Completed)
}

func TestToggleDeletedRecordIsNoOp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	assert.Equal(seed(), svc.Toggle(seed(), 1))
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	assert.Equal(seed(), svc.Toggle(seed(), 99))
}

func TestSoftDeleteStampsDeletionTime(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := svc.SoftDelete(seed(), 2)

	if assert.NotNil(items[1].DeletedAt) {
		_, err := time.Parse(time.RFC3339, *items[1].DeletedAt)
		assert.NoError(err)
	}
	// completion survives the trip to the trash
	assert.True(items[1].Completed)
}

func TestSoftDeleteDeletedRecordIsNoOp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	assert.Equal(seed(), svc.SoftDelete(seed(), 1))
}

func TestRestoreClearsDeletionTime(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := svc.Restore(seed(), 1)

	assert.Nil(items[2].DeletedAt)
	assert.False(items[2].Completed)
}

func TestRestoreKeepsCompletion(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := []domain.Todo{
		{ID: 5, Text: "done then trashed", Completed: true, CreatedAt: "2026-08-20T09:00:00Z", DeletedAt: strptr("2026-08-20T10:00:00Z")},
	}
	items = svc.Restore(items, 5)

	assert.Nil(items[0].DeletedAt)
	assert.True(items[0].Completed)
}

func TestRestoreActiveRecordIsNoOp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	assert.Equal(seed(), svc.Restore(seed(), 3))
	assert.Equal(seed(), svc.Restore(seed(), 2))
}

func TestPurgeCompletedDropsOnlyActiveCompleted(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := svc.PurgeCompleted(seed())

	assert.Len(items, 2)
	assert.Equal(3, items[0].ID)
	assert.Equal(1, items[1].ID)
}

func TestPurgeCompletedSparesTrashedRecords(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := []domain.Todo{
		{ID: 5, Text: "done then trashed", Completed: true, CreatedAt: "2026-08-20T09:00:00Z", DeletedAt: strptr("2026-08-20T10:00:00Z")},
	}

	assert.Len(svc.PurgeCompleted(items), 1)
}

func TestPurgeDeletedEmptiesTrash(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := svc.PurgeDeleted(seed())

	assert.Len(items, 2)
	assert.Equal(3, items[0].ID)
	assert.Equal(2, items[1].ID)
}

func TestFilterViewPartitionsCollection(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()
	items := seed()

	active := svc.FilterView(items, domain.ViewActive)
	completed := svc.FilterView(items, domain.ViewCompleted)
	deleted := svc.FilterView(items, domain.ViewDeleted)
	all := svc.FilterView(items, domain.ViewAll)

	assert.Len(active, 1)
	assert.Len(completed, 1)
	assert.Len(deleted, 1)
	assert.Len(all, 2)

	// the three views partition the set; all = active + completed
	assert.Equal(len(items), len(active)+len(completed)+len(deleted))
	assert.Equal(len(all), len(active)+len(completed))

	assert.Equal(3, active[0].ID)
	assert.Equal(2, completed[0].ID)
	assert.Equal(1, deleted[0].ID)
}

func TestFilterViewUnknownNameShowsAll(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()
	items := seed()

	assert.Equal(svc.FilterView(items, domain.ViewAll), svc.FilterView(items, domain.View("bogus")))
	assert.Equal(svc.FilterView(items, domain.ViewAll), svc.FilterView(items, domain.View("")))
}

func TestFilterViewNeverReturnsNil(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	out := svc.FilterView(nil, domain.ViewAll)
	assert.NotNil(out)
	assert.Len(out, 0)
}

func TestCountViews(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	c := svc.CountViews(seed())

	assert.Equal(service.Counts{All: 2, Active: 1, Completed: 1, Deleted: 1}, c)
	assert.Equal(c.All, c.Active+c.Completed)
}

func TestIDsAreNotReusedAfterPurge(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := []domain.Todo{
		{ID: 3, Text: "three", CreatedAt: "2026-08-20T09:00:00Z"},
		{ID: 7, Text: "seven", Completed: true, CreatedAt: "2026-08-20T09:01:00Z"},
		{ID: 2, Text: "two", CreatedAt: "2026-08-20T09:02:00Z"},
	}
	assert.Equal(8, store.NextID(items))

	// purging the record that holds the maximum id must not free id 7
	items = svc.PurgeCompleted(items)
	items = svc.Add(items, "eight")

	assert.Equal(8, items[0].ID)
}

func TestLifecycleScenario(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	svc := service.NewTodoService()

	items := []domain.Todo{}

	items = svc.Add(items, "buy milk")
	assert.Len(items, 1)
	assert.Equal(1, items[0].ID)
	assert.Equal("buy milk", items[0].Text)
	assert.False(items[0].Completed)
	assert.Nil(items[0].DeletedAt)

	items = svc.Add(items, "")
	assert.Len(items, 1)

	items = svc.Toggle(items, 1)
	assert.True(items[0].Completed)

	items = svc.SoftDelete(items, 1)
	assert.NotNil(items[0].DeletedAt)
	assert.True(items[0].Completed)

	assert.Empty(svc.FilterView(items, domain.ViewCompleted))
	assert.Len(svc.FilterView(items, domain.ViewDeleted), 1)

	items = svc.Restore(items, 1)
	assert.Nil(items[0].DeletedAt)
	assert.True(items[0].Completed)

	items = svc.PurgeCompleted(items)
	assert.Empty(items)
}
