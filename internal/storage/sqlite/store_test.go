package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "kairo.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLoadWithoutInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("Load should fail when the database file does not exist")
	}
}

func TestTaskRoundTrip(t *testing.T) {
	store := newTestStore(t)

	due := testTime("2024-02-01T00:00:00Z")
	created := testTime("2024-01-15T10:00:00Z")
	task := models.Task{
		ID:          "t1",
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    constants.PriorityHigh,
		Status:      constants.StatusTodo,
		DueDate:     &due,
		Tags:        []string{"work", "writing"},
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != task.Title || got.Priority != task.Priority || got.Status != task.Status {
		t.Errorf("got %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "work" {
		t.Errorf("Tags = %v", got.Tags)
	}
	if got.CompletedAt != nil {
		t.Error("CompletedAt should be nil for a todo task")
	}
}

func TestTaskStatusTransition(t *testing.T) {
	store := newTestStore(t)

	created := testTime("2024-01-15T10:00:00Z")
	task := models.Task{
		ID:        "t1",
		Title:     "Review PR",
		Priority:  constants.PriorityMedium,
		Status:    constants.StatusTodo,
		CreatedAt: created,
		UpdatedAt: created,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	completedAt := testTime("2024-01-16T12:00:00Z")
	task.Status = constants.StatusCompleted
	task.CompletedAt = &completedAt
	task.UpdatedAt = completedAt
	if err := store.UpdateTask(task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Status != constants.StatusCompleted {
		t.Errorf("Status = %s", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, completedAt)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	store := newTestStore(t)
	if err := store.DeleteTask("nope"); err == nil {
		t.Error("DeleteTask should fail for an unknown id")
	}
}

func habitFixture() models.Habit {
	created := testTime("2024-01-01T08:00:00Z")
	return models.Habit{
		ID:        "h1",
		Title:     "Morning run",
		Frequency: constants.FrequencyCustom,
		CustomDays: []time.Weekday{
			time.Monday, time.Wednesday, time.Friday,
		},
		Target:       1,
		StartDate:    testTime("2024-01-01T00:00:00Z"),
		ReminderTime: "07:00",
		Completions:  map[string]models.HabitCompletion{},
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestHabitRoundTrip(t *testing.T) {
	store := newTestStore(t)
	habit := habitFixture()

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	got, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Title != habit.Title || got.Frequency != habit.Frequency {
		t.Errorf("got %+v", got)
	}
	if len(got.CustomDays) != 3 || got.CustomDays[0] != time.Monday {
		t.Errorf("CustomDays = %v", got.CustomDays)
	}
	if got.ReminderTime != "07:00" {
		t.Errorf("ReminderTime = %q", got.ReminderTime)
	}
	if got.EndDate != nil {
		t.Error("EndDate should round-trip as nil")
	}
	if len(got.Completions) != 0 {
		t.Errorf("Completions = %v, want empty", got.Completions)
	}
}

func TestUpsertCompletion_SameDayReplaces(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddHabit(habitFixture()); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	first := models.HabitCompletion{Day: "2024-01-03", Completed: true}
	if err := store.UpsertCompletion("h1", first); err != nil {
		t.Fatalf("UpsertCompletion failed: %v", err)
	}
	second := models.HabitCompletion{Day: "2024-01-03", Completed: false, Note: "skipped, sick"}
	if err := store.UpsertCompletion("h1", second); err != nil {
		t.Fatalf("UpsertCompletion failed: %v", err)
	}

	habit, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if len(habit.Completions) != 1 {
		t.Fatalf("got %d ledger rows for the same day, want 1", len(habit.Completions))
	}
	got := habit.Completions["2024-01-03"]
	if got.Completed || got.Note != "skipped, sick" {
		t.Errorf("record = %+v, want the later write", got)
	}
}

func TestDeleteHabit_CascadesCompletions(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddHabit(habitFixture()); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if err := store.UpsertCompletion("h1", models.HabitCompletion{Day: "2024-01-03", Completed: true}); err != nil {
		t.Fatalf("UpsertCompletion failed: %v", err)
	}

	if err := store.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	if _, err := store.GetCompletion("h1", "2024-01-03"); err == nil {
		t.Error("completion rows should be deleted with their habit")
	}
}

func TestGetAllHabits_ArchivedFilter(t *testing.T) {
	store := newTestStore(t)

	live := habitFixture()
	if err := store.AddHabit(live); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	old := habitFixture()
	old.ID = "h2"
	old.Title = "Old habit"
	old.Archived = true
	if err := store.AddHabit(old); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	visible, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != "h1" {
		t.Errorf("visible habits = %+v", visible)
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d habits, want 2", len(all))
	}
}

func TestSetHabitArchived(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddHabit(habitFixture()); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	if err := store.SetHabitArchived("h1", true); err != nil {
		t.Fatalf("SetHabitArchived failed: %v", err)
	}
	got, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if !got.Archived {
		t.Error("habit should be archived")
	}

	if err := store.SetHabitArchived("missing", true); err == nil {
		t.Error("SetHabitArchived should fail for an unknown id")
	}
}

func TestTimeBlockRoundTrip(t *testing.T) {
	store := newTestStore(t)

	start := testTime("2024-01-03T09:00:00Z")
	block := models.TimeBlock{
		ID:        "b1",
		Title:     "Deep work",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		CreatedAt: start,
		UpdatedAt: start,
	}
	if err := store.AddTimeBlock(block); err != nil {
		t.Fatalf("AddTimeBlock failed: %v", err)
	}

	blocks, err := store.GetAllTimeBlocks()
	if err != nil {
		t.Fatalf("GetAllTimeBlocks failed: %v", err)
	}
	if len(blocks) != 1 || !blocks[0].EndTime.Equal(block.EndTime) {
		t.Errorf("blocks = %+v", blocks)
	}

	if err := store.DeleteTimeBlock("b1"); err != nil {
		t.Fatalf("DeleteTimeBlock failed: %v", err)
	}
	blocks, err = store.GetAllTimeBlocks()
	if err != nil {
		t.Fatalf("GetAllTimeBlocks failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("got %d blocks after delete", len(blocks))
	}
}

func TestWeeklyGoalRoundTrip(t *testing.T) {
	store := newTestStore(t)

	created := testTime("2024-01-01T08:00:00Z")
	goal := models.WeeklyGoal{
		ID:            "g1",
		Title:         "Ship the feature",
		WeekStartDate: testTime("2023-12-31T00:00:00Z"),
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	if err := store.AddWeeklyGoal(goal); err != nil {
		t.Fatalf("AddWeeklyGoal failed: %v", err)
	}

	completedAt := testTime("2024-01-04T16:00:00Z")
	goal.Completed = true
	goal.CompletedAt = &completedAt
	goal.UpdatedAt = completedAt
	if err := store.UpdateWeeklyGoal(goal); err != nil {
		t.Fatalf("UpdateWeeklyGoal failed: %v", err)
	}

	goals, err := store.GetAllWeeklyGoals()
	if err != nil {
		t.Fatalf("GetAllWeeklyGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("got %d goals", len(goals))
	}
	if !goals[0].Completed || goals[0].CompletedAt == nil || !goals[0].CompletedAt.Equal(completedAt) {
		t.Errorf("goal = %+v", goals[0])
	}
}

func TestSnapshot(t *testing.T) {
	store := newTestStore(t)

	created := testTime("2024-01-01T08:00:00Z")
	if err := store.AddTask(models.Task{
		ID: "t1", Title: "Task", Priority: constants.PriorityLow,
		Status: constants.StatusTodo, CreatedAt: created, UpdatedAt: created,
	}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := store.AddHabit(habitFixture()); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	snapshot, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snapshot.Tasks) != 1 || len(snapshot.Habits) != 1 {
		t.Errorf("snapshot has %d tasks, %d habits", len(snapshot.Tasks), len(snapshot.Habits))
	}
	if len(snapshot.TimeBlocks) != 0 || len(snapshot.Goals) != 0 {
		t.Errorf("snapshot has unexpected blocks/goals")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kairo.db")

	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer again.Close()

	if err := again.AddHabit(habitFixture()); err != nil {
		t.Fatalf("AddHabit after re-init failed: %v", err)
	}
}
