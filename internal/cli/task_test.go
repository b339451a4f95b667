package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtoledo/credtrack/internal/domain"
)

func TestTaskAdd_Defaults(t *testing.T) {
	c := newTestContainer(t)

	out, err := execute(t, c, "task", "add", "1")

	require.NoError(t, err)
	id := strings.TrimSpace(out)
	assert.Equal(t, "id-1", id)

	tasks := c.Store.Project().Lists[0].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, domain.StatusTodo, tasks[1].Status)
	assert.Equal(t, domain.PriorityNormal, tasks[1].Priority)
}

func TestTaskAdd_WithFields(t *testing.T) {
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "add", "1",
		"--name", "API work",
		"--hours", "8",
		"--priority", "critical",
		"--status", "in progress",
		"--sprint-start", "2025-03-01",
	)

	require.NoError(t, err)
	task := c.Store.Project().Lists[0].Tasks[1]
	assert.Equal(t, "API work", task.Name)
	assert.Equal(t, 8.0, task.Hours)
	assert.Equal(t, domain.PriorityCritical, task.Priority)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, "2025-03-01", task.Sprint.Start)
	assert.Equal(t, 400.0, task.Spent) // 8h x 50
}

func TestTaskAdd_UnknownList_Succeeds(t *testing.T) {
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "add", "missing")

	require.NoError(t, err)
	assert.Len(t, c.Store.Project().Lists[0].Tasks, 1)
}

func TestTaskUpdate_Hours(t *testing.T) {
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "update", "1", "101", "--hours", "20")

	require.NoError(t, err)
	v := c.Store.Projection()
	assert.Equal(t, 1000.0, v.Lists[0].Tasks[0].Spent)
	assert.Equal(t, 1000.0, v.Consumed)
}

func TestTaskUpdate_OnHoldExcludedFromConsumed(t *testing.T) {
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "update", "1", "101", "--status", "On Hold")

	require.NoError(t, err)
	v := c.Store.Projection()
	assert.Equal(t, 500.0, v.Lists[0].Tasks[0].Spent) // still displayed
	assert.Equal(t, 0.0, v.Consumed)
	assert.Equal(t, 10000.0, v.Remaining)
}

func TestTaskUpdate_InvalidStatus(t *testing.T) {
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "update", "1", "101", "--status", "Napping")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, domain.StatusDone, c.Store.Project().Lists[0].Tasks[0].Status)
}

func TestTaskUpdate_InvalidPriority(t *testing.T) {
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "update", "1", "101", "--priority", "Sideways")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestTaskUpdate_OnlyChangedFlagsApply(t *testing.T) {
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "update", "1", "101", "--url", "https://example.com/t1")

	require.NoError(t, err)
	task := c.Store.Project().Lists[0].Tasks[0]
	assert.Equal(t, "https://example.com/t1", task.BacklogURL)
	assert.Equal(t, "Project Setup", task.Name) // untouched
	assert.Equal(t, 10.0, task.Hours)           // untouched
}

func TestTaskUpdate_EmptyNameAccepted(t *testing.T) {
	// Invalid field values flow through without validation.
	c := newTestContainer(t)

	_, err := execute(t, c, "task", "update", "1", "101", "--name", "")

	require.NoError(t, err)
	assert.Empty(t, c.Store.Project().Lists[0].Tasks[0].Name)
}
