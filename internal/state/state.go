// Package state holds the in-memory application state and the pure
// reducer functions that advance it. Reducers never mutate their input:
// each takes a snapshot and returns a new one, so the calculators in
// utils and analytics can treat any snapshot as read-only.
package state

import (
	"time"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/utils"
)

// State is a snapshot of all four entity collections.
type State struct {
	Tasks      []models.Task
	Habits     []models.Habit
	TimeBlocks []models.TimeBlock
	Goals      []models.WeeklyGoal
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}

func cloneHabits(habits []models.Habit) []models.Habit {
	out := make([]models.Habit, len(habits))
	copy(out, habits)
	return out
}

func cloneCompletions(completions map[string]models.HabitCompletion) map[string]models.HabitCompletion {
	out := make(map[string]models.HabitCompletion, len(completions)+1)
	for day, c := range completions {
		out[day] = c
	}
	return out
}

// AddTask appends a task to the collection.
func AddTask(s State, task models.Task) State {
	s.Tasks = append(cloneTasks(s.Tasks), task)
	return s
}

// UpdateTask replaces the task with a matching ID. Unknown IDs are a
// no-op, mirroring lookup-by-id update semantics everywhere else.
func UpdateTask(s State, task models.Task) State {
	tasks := cloneTasks(s.Tasks)
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			break
		}
	}
	s.Tasks = tasks
	return s
}

// DeleteTask removes the task with the given ID. Deletion is a hard
// removal, there are no tombstones.
func DeleteTask(s State, id string) State {
	var tasks []models.Task
	for _, t := range s.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	s.Tasks = tasks
	return s
}

// UpdateTaskStatus transitions a task's status. CompletedAt is set
// exactly when the task moves to completed and cleared otherwise.
func UpdateTaskStatus(s State, id string, status constants.TaskStatus, now time.Time) State {
	tasks := cloneTasks(s.Tasks)
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Status = status
		tasks[i].UpdatedAt = now
		if status == constants.StatusCompleted {
			completedAt := now
			tasks[i].CompletedAt = &completedAt
		} else {
			tasks[i].CompletedAt = nil
		}
		break
	}
	s.Tasks = tasks
	return s
}

// AddHabit appends a habit to the collection.
func AddHabit(s State, habit models.Habit) State {
	s.Habits = append(cloneHabits(s.Habits), habit)
	return s
}

// UpdateHabit replaces the habit with a matching ID.
func UpdateHabit(s State, habit models.Habit) State {
	habits := cloneHabits(s.Habits)
	for i := range habits {
		if habits[i].ID == habit.ID {
			habits[i] = habit
			break
		}
	}
	s.Habits = habits
	return s
}

// DeleteHabit removes the habit with the given ID.
func DeleteHabit(s State, id string) State {
	var habits []models.Habit
	for _, h := range s.Habits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	s.Habits = habits
	return s
}

// SetHabitArchived flips a habit's archived flag.
func SetHabitArchived(s State, id string, archived bool, now time.Time) State {
	habits := cloneHabits(s.Habits)
	for i := range habits {
		if habits[i].ID == id {
			habits[i].Archived = archived
			habits[i].UpdatedAt = now
			break
		}
	}
	s.Habits = habits
	return s
}

// ToggleHabitCompletion upserts the ledger record for the given calendar
// day. The ledger is keyed by day, so writing the same day twice replaces
// the record rather than duplicating it.
func ToggleHabitCompletion(s State, habitID string, date time.Time, completed bool, note string, now time.Time) State {
	habits := cloneHabits(s.Habits)
	for i := range habits {
		if habits[i].ID != habitID {
			continue
		}
		completions := cloneCompletions(habits[i].Completions)
		day := utils.DayKey(date)
		completions[day] = models.HabitCompletion{
			Day:       day,
			Completed: completed,
			Note:      note,
		}
		habits[i].Completions = completions
		habits[i].UpdatedAt = now
		break
	}
	s.Habits = habits
	return s
}

// AddTimeBlock appends a time block to the collection.
func AddTimeBlock(s State, block models.TimeBlock) State {
	blocks := make([]models.TimeBlock, len(s.TimeBlocks))
	copy(blocks, s.TimeBlocks)
	s.TimeBlocks = append(blocks, block)
	return s
}

// DeleteTimeBlock removes the time block with the given ID.
func DeleteTimeBlock(s State, id string) State {
	var blocks []models.TimeBlock
	for _, b := range s.TimeBlocks {
		if b.ID != id {
			blocks = append(blocks, b)
		}
	}
	s.TimeBlocks = blocks
	return s
}

// AddWeeklyGoal appends a weekly goal, normalizing its week start date to
// the Sunday of the week it was created against.
func AddWeeklyGoal(s State, goal models.WeeklyGoal) State {
	goal.WeekStartDate = utils.StartOfWeek(goal.WeekStartDate)
	goals := make([]models.WeeklyGoal, len(s.Goals))
	copy(goals, s.Goals)
	s.Goals = append(goals, goal)
	return s
}

// ToggleWeeklyGoal sets a goal's completed flag. CompletedAt moves in
// lockstep with the flag.
func ToggleWeeklyGoal(s State, id string, completed bool, now time.Time) State {
	goals := make([]models.WeeklyGoal, len(s.Goals))
	copy(goals, s.Goals)
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		goals[i].Completed = completed
		goals[i].UpdatedAt = now
		if completed {
			completedAt := now
			goals[i].CompletedAt = &completedAt
		} else {
			goals[i].CompletedAt = nil
		}
		break
	}
	s.Goals = goals
	return s
}

// DeleteWeeklyGoal removes the goal with the given ID.
func DeleteWeeklyGoal(s State, id string) State {
	var goals []models.WeeklyGoal
	for _, g := range s.Goals {
		if g.ID != id {
			goals = append(goals, g)
		}
	}
	s.Goals = goals
	return s
}
