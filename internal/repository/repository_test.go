package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/testutil"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite
	db       *gorm.DB
	users    UserRepository
	notes    NoteRepository
	tasks    TaskRepository
	shifts   ShiftRepository
	standard StandardTaskRepository
}

func (s *RepositorySuite) SetupTest() {
	s.db = testutil.NewSeededDB(s.T())
	s.users = NewUserRepository(s.db)
	s.notes = NewNoteRepository(s.db)
	s.tasks = NewTaskRepository(s.db)
	s.shifts = NewShiftRepository(s.db)
	s.standard = NewStandardTaskRepository(s.db)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) TestFindByUsername_CaseInsensitive() {
	user, err := s.users.FindByUsername("LAMEC.Zehrs")
	s.Require().NoError(err)
	s.Equal("u1", user.ID)

	_, err = s.users.FindByUsername("nobody.zehrs")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositorySuite) TestUserCreate_AppendsToRoster() {
	user := &models.User{ID: utils.NewID(), Name: "Kim", Username: "kim.zehrs", Role: models.RoleEmployee, Level: 1}
	s.Require().NoError(s.users.Create(user))
	s.EqualValues(4, user.Position)

	users, err := s.users.List()
	s.Require().NoError(err)
	s.Require().Len(users, 4)
	s.Equal(user.ID, users[3].ID)
}

func (s *RepositorySuite) TestUserCreate_UsernameUniqueIgnoringCase() {
	first := &models.User{ID: utils.NewID(), Name: "Kim", Username: "Kim.zehrs", Role: models.RoleEmployee, Level: 1}
	s.Require().NoError(s.users.Create(first))
	s.Equal("kim.zehrs", first.UsernameKey)

	second := &models.User{ID: utils.NewID(), Name: "Kim", Username: "KIM.zehrs", Role: models.RoleEmployee, Level: 1}
	s.ErrorIs(s.users.Create(second), gorm.ErrDuplicatedKey)
}

func (s *RepositorySuite) TestUserList_PreloadsNotes() {
	users, err := s.users.List("PrivateNotes")
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Len(users[1].PrivateNotes, 1)
	s.Empty(users[2].PrivateNotes)
}

func (s *RepositorySuite) TestUserUpdate() {
	user, err := s.users.FindByID("u2")
	s.Require().NoError(err)

	user.XP = 1300
	s.Require().NoError(s.users.Update(user))

	reloaded, err := s.users.FindByID("u2")
	s.Require().NoError(err)
	s.Equal(1300, reloaded.XP)
}

func (s *RepositorySuite) TestNotes_AppendAndUpdate() {
	note := &models.Note{ID: utils.NewID(), UserID: "u2", Text: "Second", Author: "Sarah Conner", Date: "2024-01-01"}
	s.Require().NoError(s.notes.Append(note))
	s.EqualValues(2, note.Position)

	editor := "Sarah Conner"
	note.Text = "Second, revised"
	note.LastEditedBy = &editor
	s.Require().NoError(s.notes.Update(note))

	notes, err := s.notes.ListByUser("u2")
	s.Require().NoError(err)
	s.Require().Len(notes, 2)
	s.Equal("n1", notes[0].ID)
	s.Equal("Second, revised", notes[1].Text)
	s.Require().NotNil(notes[1].LastEditedBy)

	_, err = s.notes.FindByID("u3", note.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositorySuite) TestTasks_CreateKeepsInsertionOrder() {
	task := &models.Task{ID: utils.NewID(), Title: "Face Aisle 2", AssignedToID: "u3", Status: models.TaskStatusTodo, DueDate: "2024-01-01"}
	s.Require().NoError(s.tasks.Create(task))

	batch := []models.Task{
		{ID: utils.NewID(), Title: "A", AssignedToID: "u2", Status: models.TaskStatusTodo, DueDate: "2024-01-01"},
		{ID: utils.NewID(), Title: "B", AssignedToID: "u2", Status: models.TaskStatusTodo, DueDate: "2024-01-01"},
	}
	s.Require().NoError(s.tasks.CreateBatch(batch))

	tasks, err := s.tasks.List(TaskFilter{})
	s.Require().NoError(err)
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	s.Equal([]string{"Restock Aisle 4", "Checkout Counter Setup", "Inventory Audit", "Face Aisle 2", "A", "B"}, titles)
}

func (s *RepositorySuite) TestTasks_ListFilters() {
	assignee := "u2"
	tasks, err := s.tasks.List(TaskFilter{AssignedToID: &assignee})
	s.Require().NoError(err)
	s.Len(tasks, 2)

	status := models.TaskStatusCompleted
	tasks, err = s.tasks.List(TaskFilter{Status: &status})
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal("t3", tasks[0].ID)
}

func (s *RepositorySuite) TestTasks_CompleteWithReward() {
	task, err := s.tasks.FindByID("t1")
	s.Require().NoError(err)

	done, err := s.tasks.CompleteWithReward(task, task.XPReward)
	s.Require().NoError(err)
	s.True(done.Completed)
	s.Equal(50, done.Awarded)
	s.Require().NotNil(done.Assignee)
	s.Equal(1250, done.Assignee.XP)
	s.Equal(3, done.PreviousLevel)

	stored, err := s.tasks.FindByID("t1")
	s.Require().NoError(err)
	s.Equal(models.TaskStatusCompleted, stored.Status)

	// the same stale task a second time
	again, err := s.tasks.CompleteWithReward(task, task.XPReward)
	s.Require().NoError(err)
	s.False(again.Completed)
	s.Equal(0, again.Awarded)

	user, err := s.users.FindByID("u2")
	s.Require().NoError(err)
	s.Equal(1250, user.XP)
}

func (s *RepositorySuite) TestTasks_CompleteWithReward_AddsToStoredXP() {
	t1, err := s.tasks.FindByID("t1")
	s.Require().NoError(err)
	t2, err := s.tasks.FindByID("t2")
	s.Require().NoError(err)

	_, err = s.tasks.CompleteWithReward(t1, 50)
	s.Require().NoError(err)
	done, err := s.tasks.CompleteWithReward(t2, 900)
	s.Require().NoError(err)

	s.Equal(2150, done.Assignee.XP)
	s.Equal(3, done.Assignee.Level)

	user, err := s.users.FindByID("u2")
	s.Require().NoError(err)
	s.Equal(2150, user.XP)
}

func (s *RepositorySuite) TestTasks_Delete() {
	s.Require().NoError(s.tasks.Delete("t1"))
	_, err := s.tasks.FindByID("t1")
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	s.ErrorIs(s.tasks.Delete("t1"), gorm.ErrRecordNotFound)
}

func (s *RepositorySuite) TestShifts_NewestFirst() {
	shift := &models.Shift{ID: utils.NewID(), Title: "Schedule 2024-01-01", Date: "2024-01-01", FileName: "jan.pdf", FileURL: "#", UploadedBy: "u1"}
	s.Require().NoError(s.shifts.Create(shift))

	shifts, total, err := s.shifts.List(utils.PaginationParams{Page: 1, Limit: 10})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Require().Len(shifts, 2)
	s.Equal(shift.ID, shifts[0].ID)
	s.Equal("s1", shifts[1].ID)

	shifts, total, err = s.shifts.List(utils.PaginationParams{Page: 2, Limit: 1, Offset: 1})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Require().Len(shifts, 1)
	s.Equal("s1", shifts[0].ID)
}

func (s *RepositorySuite) TestStandardTasks() {
	s.Require().NoError(s.standard.Create(&models.StandardTask{ID: utils.NewID(), Title: "BALE CARDBOARD"}))

	list, err := s.standard.List()
	s.Require().NoError(err)
	s.Equal("RESTOCK SHELVES", list[0].Title)
	s.Equal("BALE CARDBOARD", list[len(list)-1].Title)
}

func TestNextPosition_EmptyTable(t *testing.T) {
	db := testutil.NewDB(t)

	pos, err := nextPosition(db, &models.Task{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, pos)
}
