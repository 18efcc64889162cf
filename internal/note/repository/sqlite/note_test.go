package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"executive-assistant/internal/note/repository"
)

func newTestRepo(t *testing.T, now func() time.Time) repository.Repository {
	t.Helper()
	repo, err := New(context.Background(), filepath.Join(t.TempDir(), "notes.db"), WithClock(now))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAppendReadAll_MostRecentFirstWithTimestamp(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 5, 9, 0, 0, 0, time.Local)
	repo := newTestRepo(t, func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})

	_, err := repo.Append(ctx, repository.AppendOptions{ProjectID: "42", ProjectName: "Rivelare", Text: "primeira"})
	require.NoError(t, err)
	_, err = repo.Append(ctx, repository.AppendOptions{ProjectID: "7", ProjectName: "Outro", Text: "de outro projeto"})
	require.NoError(t, err)
	_, err = repo.Append(ctx, repository.AppendOptions{ProjectID: "42", ProjectName: "Rivelare", Text: "segunda"})
	require.NoError(t, err)

	got, err := repo.ReadAll(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[05/03/2026 09:03] segunda",
		"[05/03/2026 09:01] primeira",
	}, got)
}

func TestAppend_SameTimestampKeepsInsertOrder(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 1, 1, 8, 0, 0, 0, time.Local)
	repo := newTestRepo(t, func() time.Time { return fixed })

	for i := 0; i < 3; i++ {
		_, err := repo.Append(ctx, repository.AppendOptions{ProjectID: "1", ProjectName: "p", Text: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	notes, err := repo.List(ctx, repository.ListOptions{ProjectID: "1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "2", notes[0].Text)
	assert.Equal(t, "1", notes[1].Text)
}

func TestAppend_Validation(t *testing.T) {
	repo := newTestRepo(t, time.Now)
	_, err := repo.Append(context.Background(), repository.AppendOptions{Text: "x"})
	assert.True(t, errors.Is(err, repository.ErrEmptyProjectID))
	_, err = repo.Append(context.Background(), repository.AppendOptions{ProjectID: "1"})
	assert.True(t, errors.Is(err, repository.ErrEmptyText))
}

func TestAppend_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, time.Now)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Append(ctx, repository.AppendOptions{ProjectID: "shared", ProjectName: "p", Text: fmt.Sprint(i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	notes, err := repo.List(ctx, repository.ListOptions{ProjectID: "shared"})
	require.NoError(t, err)
	assert.Len(t, notes, 20)
}
