package views

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmaster-api/internal/models"
)

const today = "2023-11-01"

func fixtureTasks() []models.Task {
	return []models.Task{
		{ID: "t1", AssignedToID: "u2", Status: models.TaskStatusTodo, DueDate: "2023-10-20"},
		{ID: "t2", AssignedToID: "u2", Status: models.TaskStatusInProgress, DueDate: today},
		{ID: "t3", AssignedToID: "u3", Status: models.TaskStatusCompleted, DueDate: "2023-10-29"},
		{ID: "t4", AssignedToID: "u2", Status: models.TaskStatusCompleted, DueDate: today},
		{ID: "t5", AssignedToID: "u2", Status: models.TaskStatusCompleted, DueDate: "2023-10-31"},
		{ID: "t6", AssignedToID: "u3", Status: models.TaskStatusInProgress, DueDate: "2023-11-02"},
	}
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func TestManagerFilter_DefaultReturnsEverything(t *testing.T) {
	tasks := fixtureTasks()
	for _, filter := range []ManagerFilter{{}, {AssigneeID: FilterAll, Status: FilterAll}} {
		if diff := cmp.Diff(tasks, filter.Apply(tasks)); diff != "" {
			t.Errorf("unexpected result (-want +got):\n%s", diff)
		}
	}
}

func TestManagerFilter_StatusOnly(t *testing.T) {
	got := ManagerFilter{AssigneeID: FilterAll, Status: string(models.TaskStatusInProgress)}.Apply(fixtureTasks())
	if diff := cmp.Diff([]string{"t2", "t6"}, ids(got)); diff != "" {
		t.Errorf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestManagerFilter_Conjunction(t *testing.T) {
	tests := []struct {
		name   string
		filter ManagerFilter
		want   []string
	}{
		{"assignee", ManagerFilter{AssigneeID: "u3"}, []string{"t3", "t6"}},
		{"assignee and status", ManagerFilter{AssigneeID: "u2", Status: "COMPLETED"}, []string{"t4", "t5"}},
		{"date", ManagerFilter{DueDate: today}, []string{"t2", "t4"}},
		{"all three", ManagerFilter{AssigneeID: "u2", Status: "COMPLETED", DueDate: today}, []string{"t4"}},
		{"no match", ManagerFilter{AssigneeID: "u9"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(fixtureTasks())))
		})
	}
}

func TestEmployeeFocus(t *testing.T) {
	got := EmployeeFocus(fixtureTasks(), "u2", today)
	// t5 is completed but due on another day, so it is hidden; the overdue TODO t1 stays.
	assert.Equal(t, []string{"t1", "t2", "t4"}, ids(got))
}

func TestEmployeeFocus_MatchesSetDefinition(t *testing.T) {
	tasks := fixtureTasks()
	got := EmployeeFocus(tasks, "u3", today)

	var want []string
	for _, task := range tasks {
		if task.AssignedToID == "u3" && !(task.Status == models.TaskStatusCompleted && task.DueDate != today) {
			want = append(want, task.ID)
		}
	}
	assert.Equal(t, want, ids(got))
}

func TestVisible_ByRole(t *testing.T) {
	tasks := fixtureTasks()
	manager := models.User{ID: "u1", Role: models.RoleManager}
	employee := models.User{ID: "u2", Role: models.RoleEmployee}

	assert.Len(t, Visible(tasks, manager, ManagerFilter{}, today), len(tasks))
	assert.Equal(t, []string{"t1", "t2", "t4"}, ids(Visible(tasks, employee, ManagerFilter{AssigneeID: "u3"}, today)))
}

func TestBoard(t *testing.T) {
	columns := Board(fixtureTasks())
	require.Len(t, columns, 3)

	assert.Equal(t, models.TaskStatusTodo, columns[0].Status)
	assert.Equal(t, []string{"t1"}, ids(columns[0].Tasks))
	assert.Equal(t, []string{"t2", "t6"}, ids(columns[1].Tasks))
	assert.Equal(t, []string{"t3", "t4", "t5"}, ids(columns[2].Tasks))
	assert.Equal(t, 3, columns[2].Count)
}

func TestDashboard(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "Lamec", Role: models.RoleManager},
		{ID: "u2", Name: "John Doe", Role: models.RoleEmployee},
		{ID: "u3", Name: "Jane Smith", Role: models.RoleEmployee},
	}

	stats := Dashboard(fixtureTasks(), users)

	assert.Equal(t, 6, stats.TotalTasks)
	assert.Equal(t, 3, stats.PendingTasks)
	assert.Equal(t, 50, stats.CompletionRate)
	assert.Equal(t, []StatusCount{
		{Status: models.TaskStatusTodo, Count: 1},
		{Status: models.TaskStatusInProgress, Count: 2},
		{Status: models.TaskStatusCompleted, Count: 3},
	}, stats.StatusCounts)
	assert.Equal(t, []EmployeePerformance{
		{UserID: "u2", Name: "John Doe", Completed: 2, Pending: 2},
		{UserID: "u3", Name: "Jane Smith", Completed: 1, Pending: 1},
	}, stats.Performance)
}

func TestDashboard_Empty(t *testing.T) {
	stats := Dashboard(nil, nil)
	assert.Zero(t, stats.CompletionRate)
	assert.Empty(t, stats.Performance)
}

func TestRoster(t *testing.T) {
	users := []models.User{{ID: "u2", XP: 1200}, {ID: "u3", XP: 2400}}
	entries := Roster(users, fixtureTasks())

	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].CompletedCount)
	assert.Equal(t, 20, entries[0].Progress)
	assert.Equal(t, 800, entries[0].XPToNextLevel)
	assert.Equal(t, 1, entries[1].CompletedCount)
	assert.Equal(t, 1, CompletedCount(fixtureTasks(), "u3"))
}

func TestAddStandardTitle(t *testing.T) {
	list := []string{"RESTOCK SHELVES", "FACE AISLES"}

	same, added := AddStandardTitle(list, " restock shelves ")
	assert.False(t, added)
	assert.Len(t, same, 2)

	next, added := AddStandardTitle(list, "Clean produce")
	assert.True(t, added)
	assert.Equal(t, []string{"RESTOCK SHELVES", "FACE AISLES", "CLEAN PRODUCE"}, next)
	assert.Len(t, list, 2, "source list must not change")

	_, added = AddStandardTitle(list, "   ")
	assert.False(t, added)
}
