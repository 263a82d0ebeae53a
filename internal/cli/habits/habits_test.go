package habits

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/storage/sqlite"
)

func newTestContext(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "kairo.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return &cli.Context{Store: store}
}

func seedHabit(t *testing.T, ctx *cli.Context) models.Habit {
	t.Helper()
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	habit := models.Habit{
		ID:          "h1",
		Title:       "Morning run",
		Frequency:   constants.FrequencyDaily,
		Target:      1,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Completions: map[string]models.HabitCompletion{},
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	return habit
}

func TestHabitMark_RecordsDay(t *testing.T) {
	ctx := newTestContext(t)
	seedHabit(t, ctx)

	cmd := HabitMarkCmd{Title: "Morning run", Date: "2024-01-05", Note: "easy pace"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := ctx.Store.GetCompletion("h1", "2024-01-05")
	if err != nil {
		t.Fatalf("GetCompletion failed: %v", err)
	}
	if !got.Completed || got.Note != "easy pace" {
		t.Errorf("record = %+v, want completed with note", got)
	}
}

func TestHabitMark_RemarkReplacesExistingRecord(t *testing.T) {
	ctx := newTestContext(t)
	seedHabit(t, ctx)

	if err := ctx.Store.UpsertCompletion("h1", models.HabitCompletion{
		Day:       "2024-01-05",
		Completed: true,
		Note:      "old",
	}); err != nil {
		t.Fatalf("UpsertCompletion failed: %v", err)
	}

	// Undoing an already-recorded day must stick, not be reverted by the
	// habit row update that follows it
	cmd := HabitMarkCmd{Title: "Morning run", Date: "2024-01-05", NotDone: true, Note: "skipped"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := ctx.Store.GetCompletion("h1", "2024-01-05")
	if err != nil {
		t.Fatalf("GetCompletion failed: %v", err)
	}
	if got.Completed {
		t.Error("record still marked completed after --not-done")
	}
	if got.Note != "skipped" {
		t.Errorf("Note = %q, want the later write", got.Note)
	}

	habit, err := ctx.Store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if len(habit.Completions) != 1 {
		t.Errorf("got %d ledger records for the day, want 1", len(habit.Completions))
	}
}

func TestHabitMark_UnknownHabit(t *testing.T) {
	ctx := newTestContext(t)

	cmd := HabitMarkCmd{Title: "Nope", Date: "2024-01-05"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("Run should fail for an unknown habit")
	}
}
