package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsDefaults(t *testing.T) {
	store := NewStore()

	task, err := store.Create(context.Background(), Task{
		Role:  "patient",
		Title: "Prepare for your abhyanga session",
		DueAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, StatusPending, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestListDueFiltersAndOrders(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	older, err := store.Create(ctx, Task{Role: "patient", Title: "a", DueAt: now.Add(-2 * time.Hour)})
	require.NoError(t, err)
	newer, err := store.Create(ctx, Task{Role: "patient", Title: "b", DueAt: now.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = store.Create(ctx, Task{Role: "patient", Title: "future", DueAt: now.Add(time.Hour)})
	require.NoError(t, err)

	sent, err := store.Create(ctx, Task{Role: "patient", Title: "already sent", DueAt: now.Add(-3 * time.Hour)})
	require.NoError(t, err)
	require.NoError(t, store.MarkSent(ctx, sent.ID))

	due, err := store.ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, older.ID, due[0].ID)
	assert.Equal(t, newer.ID, due[1].ID)
}

func TestTransitions(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	task, err := store.Create(ctx, Task{Role: "practitioner", Title: "t", DueAt: time.Now()})
	require.NoError(t, err)

	require.NoError(t, store.MarkSent(ctx, task.ID))
	got, err := store.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, got.Status)
	assert.NotNil(t, got.SentAt)

	// Sent tasks cannot be marked sent again.
	assert.Error(t, store.MarkSent(ctx, task.ID))

	require.NoError(t, store.MarkDone(ctx, task.ID))
	got, err = store.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, got.Status)
	assert.NotNil(t, got.CompletedAt)
}

func TestDismissFromPendingOrSent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	pending, err := store.Create(ctx, Task{Role: "patient", Title: "p", DueAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, store.Dismiss(ctx, pending.ID))

	sent, err := store.Create(ctx, Task{Role: "patient", Title: "s", DueAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, store.MarkSent(ctx, sent.ID))
	require.NoError(t, store.Dismiss(ctx, sent.ID))

	assert.ErrorIs(t, store.MarkSent(ctx, uuid.New()), ErrNotFound)
}

func TestListByRole(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Create(ctx, Task{Role: "patient", Title: "p", DueAt: time.Now()})
	require.NoError(t, err)
	_, err = store.Create(ctx, Task{Role: "practitioner", Title: "pr", DueAt: time.Now()})
	require.NoError(t, err)

	tasks, err := store.ListByRole(ctx, "practitioner")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "pr", tasks[0].Title)
}
