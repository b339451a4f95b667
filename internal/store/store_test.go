package store

import (
	"testing"

	"github.com/mtoledo/credtrack/internal/domain"
	"github.com/mtoledo/credtrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(repo *testutil.MockSnapshotRepository) *Store {
	return New(repo, &testutil.SeqIDGenerator{}, testutil.NopLogger{}, domain.SeedProject())
}

func TestNew_HydratesFromSnapshot(t *testing.T) {
	saved := domain.SeedProject()
	saved.Credits = 777
	repo := &testutil.MockSnapshotRepository{Snapshot: &saved}

	s := newTestStore(repo)
	defer s.Close()

	assert.Equal(t, 777.0, s.Project().Credits)
}

func TestNew_MissingSnapshotFallsBackToSeed(t *testing.T) {
	s := newTestStore(&testutil.MockSnapshotRepository{})
	defer s.Close()

	assert.Equal(t, domain.SeedProject(), s.Project())
}

func TestNew_MalformedSnapshotFallsBackToSeed(t *testing.T) {
	repo := &testutil.MockSnapshotRepository{LoadErr: domain.ErrMalformedSnapshot}
	logger := &testutil.RecordingLogger{}
	s := New(repo, &testutil.SeqIDGenerator{}, logger, domain.SeedProject())
	defer s.Close()

	assert.Equal(t, domain.SeedProject(), s.Project())
	assert.Equal(t, 1, logger.WarnCount())
}

func TestMutationsPersistInOrder(t *testing.T) {
	repo := &testutil.MockSnapshotRepository{}
	s := newTestStore(repo)

	s.SetCredits(100)
	s.SetHourlyRate(10)
	listID := s.AddList()
	s.RenameList(listID, "Bugs")
	s.Close()

	require.Len(t, repo.Saved, 4)
	assert.Equal(t, 100.0, repo.Saved[0].Credits)
	assert.Equal(t, 10.0, repo.Saved[1].HourlyRate)
	assert.Len(t, repo.Saved[2].Lists, 2)
	assert.Equal(t, "Bugs", repo.Saved[3].Lists[1].Name)

	// Last write reflects the latest state.
	assert.Equal(t, s.Project(), *repo.LastSaved())
}

func TestNoOpMutationStillPersists(t *testing.T) {
	repo := &testutil.MockSnapshotRepository{}
	s := newTestStore(repo)

	before := s.Project()
	s.RenameList("missing", "whatever")
	after := s.Project()
	s.Close()

	assert.Equal(t, before, after)
	assert.Equal(t, 1, repo.SaveCalls())
}

func TestUpdateTask_UnknownIDs_StateUnchanged(t *testing.T) {
	s := newTestStore(&testutil.MockSnapshotRepository{})
	defer s.Close()

	before := s.Project()
	name := "x"
	s.UpdateTask("missing", "also-missing", domain.TaskPatch{Name: &name})
	s.UpdateTask("1", "missing", domain.TaskPatch{Name: &name})

	assert.Equal(t, before, s.Project())
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	repo := &testutil.MockSnapshotRepository{SaveErr: assert.AnError}
	logger := &testutil.RecordingLogger{}
	s := New(repo, &testutil.SeqIDGenerator{}, logger, domain.SeedProject())

	s.SetCredits(1)
	s.SetCredits(2)
	s.Close()

	// In-memory state stays authoritative and further mutations work.
	assert.Equal(t, 2.0, s.Project().Credits)
	assert.Equal(t, 2, logger.WarnCount())
}

func TestAddList_ReturnsGeneratedID(t *testing.T) {
	s := newTestStore(&testutil.MockSnapshotRepository{})
	defer s.Close()

	id := s.AddList()
	p := s.Project()

	require.Len(t, p.Lists, 2)
	added := p.Lists[1]
	assert.Equal(t, id, added.ID)
	assert.Equal(t, domain.DefaultListName, added.Name)
	assert.True(t, added.IsExpanded)
	assert.Empty(t, added.Tasks)
	assert.NotEqual(t, p.Lists[0].ID, added.ID)
}

func TestAddTask_AppendsWithDefaults(t *testing.T) {
	s := newTestStore(&testutil.MockSnapshotRepository{})
	defer s.Close()

	id := s.AddTask("1")
	tasks := s.Project().Lists[0].Tasks

	require.Len(t, tasks, 2)
	assert.Equal(t, id, tasks[1].ID)
	assert.Equal(t, domain.StatusTodo, tasks[1].Status)
	assert.Equal(t, domain.PriorityNormal, tasks[1].Priority)
}

func TestProjectionReflectsMutationsImmediately(t *testing.T) {
	s := newTestStore(&testutil.MockSnapshotRepository{})
	defer s.Close()

	s.SetHourlyRate(100)
	v := s.Projection()

	assert.Equal(t, 1000.0, v.Consumed)
	assert.Equal(t, 9000.0, v.Remaining)
}

func TestProject_ReturnsIsolatedCopy(t *testing.T) {
	s := newTestStore(&testutil.MockSnapshotRepository{})
	defer s.Close()

	p := s.Project()
	p.Lists[0].Name = "mutated"

	assert.Equal(t, "January", s.Project().Lists[0].Name)
}
