package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/utils"
	"github.com/kairoapp/kairo/internal/validation"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Mark      HabitMarkCmd      `cmd:"" help:"Record a habit for a day."`
	Today     HabitTodayCmd     `cmd:"" help:"Show today's due habits."`
	Log       HabitLogCmd       `cmd:"" help:"Show habit history (ASCII grid)."`
	Stats     HabitStatsCmd     `cmd:"" help:"Show streak and completion rate for a habit."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Unarchive a habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit permanently."`
}

type HabitAddCmd struct {
	Title       string `arg:"" optional:"" help:"Habit title."`
	Description string `help:"Habit description." default:""`
	Frequency   string `help:"Frequency: daily, weekly, monthly, or custom." default:"daily"`
	Days        string `help:"Weekdays for custom frequency (e.g. mon,wed,fri)." default:""`
	Start       string `help:"Start date in YYYY-MM-DD format (default: today)." default:""`
	End         string `help:"End date in YYYY-MM-DD format." default:""`
	Reminder    string `help:"Reminder time in HH:MM format (display only)." default:""`
	Color       string `help:"Hex color for display." default:""`
	Target      int    `help:"Times per period target." default:"${habit_target}"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	// Without a title, fall back to an interactive form
	if c.Title == "" {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	if _, err := ctx.Store.GetHabitByTitle(c.Title); err == nil {
		return fmt.Errorf("habit with title %q already exists", c.Title)
	}

	now := time.Now()
	habit := models.Habit{
		ID:           uuid.New().String(),
		Title:        c.Title,
		Description:  c.Description,
		Frequency:    constants.HabitFrequency(c.Frequency),
		Target:       c.Target,
		Color:        c.Color,
		StartDate:    utils.Truncate(now),
		ReminderTime: c.Reminder,
		Completions:  map[string]models.HabitCompletion{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if c.Start != "" {
		start, err := utils.ParseDay(c.Start)
		if err != nil {
			return err
		}
		habit.StartDate = start
	}
	if c.End != "" {
		end, err := utils.ParseDay(c.End)
		if err != nil {
			return err
		}
		habit.EndDate = &end
	}
	if c.Days != "" {
		days, err := cli.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		habit.CustomDays = days
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Title, habit.Frequency)
	return nil
}

func (c *HabitAddCmd) prompt() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit title").
				Value(&c.Title),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(constants.FrequencyDaily)),
					huh.NewOption("Weekly", string(constants.FrequencyWeekly)),
					huh.NewOption("Monthly", string(constants.FrequencyMonthly)),
					huh.NewOption("Custom weekdays", string(constants.FrequencyCustom)),
				).
				Value(&c.Frequency),
			huh.NewInput().
				Title("Weekdays (custom frequency only, e.g. mon,wed,fri)").
				Value(&c.Days),
		),
	)
	return form.Run()
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	asOf := time.Now()
	for _, habit := range habits {
		status := ""
		if habit.Archived {
			status = " [ARCHIVED]"
		}
		freq := string(habit.Frequency)
		if habit.Frequency == constants.FrequencyCustom {
			freq = "custom: " + cli.FormatWeekdays(habit.CustomDays)
		}
		fmt.Printf("%s (%s) streak %d, %.0f%%%s\n",
			habit.Title, freq,
			utils.CurrentStreak(habit, asOf),
			utils.CompletionRate(habit, asOf),
			status)
	}
	return nil
}

type HabitMarkCmd struct {
	Title   string `arg:"" help:"Habit title."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note    string `help:"Optional note for this day." default:""`
	NotDone bool   `help:"Record the day as not completed."`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	day := c.Date
	if day == "" {
		day = utils.DayKey(time.Now())
	} else if _, err := utils.ParseDay(day); err != nil {
		return err
	}

	// Upsert by day: marking the same day twice replaces the record. The
	// new record goes into the loaded ledger so UpdateHabit persists it
	// rather than re-writing the stale map over it.
	completion := models.HabitCompletion{
		Day:       day,
		Completed: !c.NotDone,
		Note:      c.Note,
	}
	if habit.Completions == nil {
		habit.Completions = map[string]models.HabitCompletion{}
	}
	habit.Completions[day] = completion

	habit.UpdatedAt = time.Now()
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	if completion.Completed {
		fmt.Printf("Marked habit %q done for %s\n", c.Title, day)
	} else {
		fmt.Printf("Marked habit %q not done for %s\n", c.Title, day)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("Habits for %s:\n\n", utils.DayKey(now))

	due := 0
	done := 0
	for _, habit := range habits {
		if !utils.IsDue(habit, now) {
			continue
		}
		due++
		marker := "[ ]"
		if completed, _ := utils.CompletionStatus(habit, now); completed {
			marker = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", marker, habit.Title)
	}

	if due == 0 {
		fmt.Println("Nothing due today.")
		return nil
	}
	fmt.Printf("\nCompleted: %d/%d\n", done, due)
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only." default:""`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	if c.Habit != "" {
		habit, err := ctx.Store.GetHabitByTitle(c.Habit)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{habit}
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	end := utils.Truncate(time.Now())
	start := end.AddDate(0, 0, -(c.Days - 1))

	const nameWidth = 20
	fmt.Printf("Habit log (last %d days):\n\n", c.Days)
	fmt.Print(strings.Repeat(" ", nameWidth))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", start.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*c.Days))

	for _, habit := range habits {
		name := habit.Title
		if len(name) > nameWidth {
			name = name[:nameWidth-3] + "..."
		} else {
			name += strings.Repeat(" ", nameWidth-len(name))
		}
		fmt.Print(name)

		for i := 0; i < c.Days; i++ {
			day := start.AddDate(0, 0, i)
			switch {
			case !utils.IsDue(habit, day):
				fmt.Print("      ")
			default:
				if completed, _ := utils.CompletionStatus(habit, day); completed {
					fmt.Print("  x   ")
				} else {
					fmt.Print("  .   ")
				}
			}
		}
		fmt.Println()
	}

	return nil
}

type HabitStatsCmd struct {
	Title string `arg:"" help:"Habit title."`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	asOf := time.Now()
	fmt.Printf("%s\n", habit.Title)
	fmt.Printf("  Current streak:  %d days\n", utils.CurrentStreak(habit, asOf))
	fmt.Printf("  Longest streak:  %d days\n", utils.LongestStreak(habit))
	fmt.Printf("  Completion rate: %.1f%%\n", utils.CompletionRate(habit, asOf))
	fmt.Printf("  Tracking since:  %s\n", utils.DayKey(habit.StartDate))
	return nil
}

type HabitArchiveCmd struct {
	Title string `arg:"" help:"Habit title to archive."`
	Yes   bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByTitle(c.Title)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Title)
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Archive habit %q?", habit.Title)).
				Description("Archived habits keep their history but stop appearing in daily views.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.SetHabitArchived(habit.ID, true); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", habit.Title)
	return nil
}

type HabitUnarchiveCmd struct {
	Title string `arg:"" help:"Habit title to unarchive."`
}

func (c *HabitUnarchiveCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.Title == c.Title {
			if err := ctx.Store.SetHabitArchived(habit.ID, false); err != nil {
				return err
			}
			fmt.Printf("Unarchived habit: %s\n", habit.Title)
			return nil
		}
	}
	return fmt.Errorf("habit %q not found", c.Title)
}

type HabitDeleteCmd struct {
	Title string `arg:"" help:"Habit title to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.Title == c.Title {
			if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted habit: %s\n", habit.Title)
			fmt.Println("(This removes its completion history as well)")
			return nil
		}
	}
	return fmt.Errorf("habit %q not found", c.Title)
}
