package sync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	gosync "sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"executive-assistant/internal/model"
	"executive-assistant/internal/project"
	"executive-assistant/pkg/log"
	"executive-assistant/pkg/zoho"
)

type fakeSource struct {
	mu           gosync.Mutex
	projects     []zoho.Project
	tasks        map[string][]zoho.Task
	projectFails []error
	taskErr      error
	projectCalls int
	taskCalls    int
}

func (f *fakeSource) ListProjects(ctx context.Context) ([]zoho.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projectCalls++
	if len(f.projectFails) > 0 {
		err := f.projectFails[0]
		f.projectFails = f.projectFails[1:]
		return nil, err
	}
	return f.projects, nil
}

func (f *fakeSource) ListTasks(ctx context.Context, projectID string) ([]zoho.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.taskCalls++
	if f.taskErr != nil {
		return nil, f.taskErr
	}
	return f.tasks[projectID], nil
}

func newSource() *fakeSource {
	return &fakeSource{
		projects: []zoho.Project{
			{ID: "1", Name: "Rivelare", OwnerID: "me", ProjectPercent: "42"},
			{ID: "2", Name: "Clínica 2", OwnerID: "me", CustomStatusName: "Concluído", ProjectPercent: "100"},
			{ID: "3", Name: "Outro dono", OwnerID: "someone"},
			{ID: "4", Name: "Padaria", OwnerID: "me", PercentComplete: "10"},
		},
		tasks: map[string][]zoho.Task{
			"1": {{Name: "Kickoff", Status: &zoho.Named{Name: "Open"}, TaskList: &zoho.Named{Name: "Fase 1"}, PercentComplete: "30"}},
		},
	}
}

func newUseCase(t *testing.T, src Source, store *project.Store) (UseCase, string) {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "db_projetos.json")
	if store == nil {
		store = project.NewStore(out)
	}
	uc := New(log.NewNop(), src, store, Options{
		OwnerID:     "me",
		OutputPath:  out,
		HistoryPath: filepath.Join(dir, "historico.json"),
		RetryDelay:  time.Millisecond,
		Store:       store,
		Now:         func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) },
	})
	return uc, out
}

func TestSync_FiltersAndWrites(t *testing.T) {
	src := newSource()
	store := project.NewStore("")
	uc, path := newUseCase(t, src, store)

	out, err := uc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, out.Fetched)
	assert.Equal(t, 2, out.Kept)
	assert.Equal(t, []string{"Clínica 2"}, out.Skipped)

	snap, err := project.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, snap.Len())

	rivelare, ok := snap.Get("1")
	require.True(t, ok)
	assert.Equal(t, 42.0, rivelare.PercentComplete)
	assert.Equal(t, DefaultStatus, rivelare.Status)
	require.Len(t, rivelare.Tasks, 1)
	assert.Equal(t, "Fase 1", rivelare.CurrentPhase())
	assert.Equal(t, defaultTaskMilestone, rivelare.Tasks[0].Milestone)
	assert.Equal(t, defaultTaskPriority, rivelare.Tasks[0].Priority)

	padaria, ok := snap.Get("4")
	require.True(t, ok)
	assert.Equal(t, 10.0, padaria.PercentComplete)
	assert.Empty(t, padaria.Tasks)

	assert.Equal(t, 2, store.Snapshot().Len(), "store should hold the new snapshot")
}

func TestSync_RetriesServerErrors(t *testing.T) {
	src := newSource()
	src.projectFails = []error{&zoho.APIError{StatusCode: 503}, &zoho.APIError{StatusCode: 500}}
	uc, _ := newUseCase(t, src, nil)

	_, err := uc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, src.projectCalls)
}

func TestSync_DoesNotRetryClientErrors(t *testing.T) {
	src := newSource()
	src.projectFails = []error{&zoho.APIError{StatusCode: 401}}
	uc, path := newUseCase(t, src, nil)

	_, err := uc.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, src.projectCalls)
	assert.NoFileExists(t, path)
}

func TestSync_TaskFailureKeepsOldFile(t *testing.T) {
	src := newSource()
	src.taskErr = &zoho.APIError{StatusCode: 502}
	uc, path := newUseCase(t, src, nil)

	_, err := uc.Sync(context.Background())
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestSync_RequiresOutputPath(t *testing.T) {
	uc := New(log.NewNop(), newSource(), project.NewStore(""), Options{})
	_, err := uc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrNoOutputPath)
}

func TestHistory_RecordAndCompare(t *testing.T) {
	store := project.NewStore("")
	snap, err := project.NewSnapshot([]model.Project{
		{ID: "1", Name: "Rivelare", PercentComplete: 42},
		{ID: "2", Name: "Padaria", PercentComplete: 10.4},
	})
	require.NoError(t, err)
	store.Replace(snap)

	uc, _ := newUseCase(t, newSource(), store)
	n, err := uc.RecordHistory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	moved, err := project.NewSnapshot([]model.Project{
		{ID: "1", Name: "Rivelare", PercentComplete: 50},
		{ID: "2", Name: "Padaria", PercentComplete: 10.9},
		{ID: "3", Name: "Novo", PercentComplete: 5},
	})
	require.NoError(t, err)
	store.Replace(moved)

	cmp, err := uc.Compare(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Stagnant{{Name: "Padaria", Percent: 10}}, cmp.Stagnant)
	assert.Equal(t, []Evolution{{Name: "Rivelare", Before: 42, After: 50, Delta: 8}}, cmp.Evolved)
}

func TestLoadHistory_MissingFile(t *testing.T) {
	h, err := LoadHistory(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, h)
}

type countingUseCase struct {
	UseCase
	done chan struct{}
}

func (c *countingUseCase) Sync(ctx context.Context) (SyncOutput, error) {
	close(c.done)
	return SyncOutput{Kept: 1, Fetched: 1}, nil
}

func TestHandleSync_RunsInBackground(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &countingUseCase{done: make(chan struct{})}
	engine := gin.New()
	engine.POST("/sync", NewHandler(uc, log.NewNop()).HandleSync)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-uc.done:
	case <-time.After(time.Second):
		t.Fatal("sync did not run")
	}
}
