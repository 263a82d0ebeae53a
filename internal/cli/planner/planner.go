package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/utils"
	"github.com/kairoapp/kairo/internal/validation"
)

type BlockCmd struct {
	Add    BlockAddCmd    `cmd:"" help:"Add a time block."`
	List   BlockListCmd   `cmd:"" help:"List time blocks for a day."`
	Delete BlockDeleteCmd `cmd:"" help:"Delete a time block."`
}

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a weekly goal."`
	List   GoalListCmd   `cmd:"" help:"List this week's goals."`
	Toggle GoalToggleCmd `cmd:"" help:"Toggle a weekly goal's completion."`
	Delete GoalDeleteCmd `cmd:"" help:"Delete a weekly goal."`
}

type BlockAddCmd struct {
	Title       string `arg:"" help:"Block title."`
	Start       string `arg:"" help:"Start time (YYYY-MM-DD HH:MM)."`
	End         string `arg:"" help:"End time (YYYY-MM-DD HH:MM or HH:MM on the same day)."`
	Description string `help:"Block description." default:""`
	Color       string `help:"Hex color for display." default:""`
}

const blockTimeFormat = "2006-01-02 15:04"

func (c *BlockAddCmd) Run(ctx *cli.Context) error {
	start, err := time.ParseInLocation(blockTimeFormat, c.Start, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start time %q, expected YYYY-MM-DD HH:MM", c.Start)
	}

	end, err := time.ParseInLocation(blockTimeFormat, c.End, time.Local)
	if err != nil {
		// Allow a bare HH:MM end on the same day as the start
		clock, clockErr := time.ParseInLocation("15:04", c.End, time.Local)
		if clockErr != nil {
			return fmt.Errorf("invalid end time %q, expected YYYY-MM-DD HH:MM or HH:MM", c.End)
		}
		end = time.Date(start.Year(), start.Month(), start.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.Local)
	}

	now := time.Now()
	block := models.TimeBlock{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		StartTime:   start,
		EndTime:     end,
		Color:       c.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validation.ValidateTimeBlock(block); err != nil {
		return err
	}

	existing, err := ctx.Store.GetAllTimeBlocks()
	if err != nil {
		return err
	}
	for _, other := range existing {
		if utils.RangesOverlap(block.StartTime, block.EndTime, other.StartTime, other.EndTime) {
			fmt.Printf("Warning: overlaps with %q (%s)\n",
				other.Title, utils.FormatDateRange(other.StartTime, other.EndTime))
		}
	}

	if err := ctx.Store.AddTimeBlock(block); err != nil {
		return err
	}

	fmt.Printf("Added block: %s (%s)\n", block.Title, utils.FormatDateRange(start, end))
	return nil
}

type BlockListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *BlockListCmd) Run(ctx *cli.Context) error {
	date := time.Now()
	if c.Date != "" {
		parsed, err := utils.ParseDay(c.Date)
		if err != nil {
			return err
		}
		date = parsed
	}

	blocks, err := ctx.Store.GetAllTimeBlocks()
	if err != nil {
		return err
	}
	blocks = utils.TimeBlocksForDate(blocks, date)
	if len(blocks) == 0 {
		fmt.Printf("No time blocks for %s.\n", utils.DayKey(date))
		return nil
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].StartTime.Before(blocks[j].StartTime)
	})

	fmt.Printf("Time blocks for %s:\n\n", utils.FormatShortDate(date))
	for _, block := range blocks {
		fmt.Printf("%s - %s  %s\n",
			utils.FormatClock(block.StartTime),
			utils.FormatClock(block.EndTime),
			block.Title)
	}
	return nil
}

type BlockDeleteCmd struct {
	Title string `arg:"" help:"Block title to delete."`
	Date  string `help:"Disambiguate by date (YYYY-MM-DD)." default:""`
}

func (c *BlockDeleteCmd) Run(ctx *cli.Context) error {
	blocks, err := ctx.Store.GetAllTimeBlocks()
	if err != nil {
		return err
	}

	var matches []models.TimeBlock
	for _, block := range blocks {
		if block.Title != c.Title {
			continue
		}
		if c.Date != "" {
			date, err := utils.ParseDay(c.Date)
			if err != nil {
				return err
			}
			if !utils.SameDay(block.StartTime, date) {
				continue
			}
		}
		matches = append(matches, block)
	}

	switch len(matches) {
	case 0:
		return fmt.Errorf("time block %q not found", c.Title)
	case 1:
		if err := ctx.Store.DeleteTimeBlock(matches[0].ID); err != nil {
			return err
		}
		fmt.Printf("Deleted block: %s\n", matches[0].Title)
		return nil
	default:
		return fmt.Errorf("multiple blocks named %q, use --date to disambiguate", c.Title)
	}
}

type GoalAddCmd struct {
	Title       string `arg:"" help:"Goal title."`
	Description string `help:"Goal description." default:""`
	Week        string `help:"Any date in the target week (YYYY-MM-DD, default: this week)." default:""`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	weekAnchor := time.Now()
	if c.Week != "" {
		parsed, err := utils.ParseDay(c.Week)
		if err != nil {
			return err
		}
		weekAnchor = parsed
	}

	now := time.Now()
	goal := models.WeeklyGoal{
		ID:            uuid.New().String(),
		Title:         c.Title,
		Description:   c.Description,
		WeekStartDate: utils.StartOfWeek(weekAnchor),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := validation.ValidateWeeklyGoal(goal); err != nil {
		return err
	}
	if err := ctx.Store.AddWeeklyGoal(goal); err != nil {
		return err
	}

	fmt.Printf("Added goal: %s (week of %s)\n",
		goal.Title, utils.FormatShortDate(goal.WeekStartDate))
	return nil
}

type GoalListCmd struct {
	Week string `help:"Any date in the target week (YYYY-MM-DD, default: this week)." default:""`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	weekAnchor := time.Now()
	if c.Week != "" {
		parsed, err := utils.ParseDay(c.Week)
		if err != nil {
			return err
		}
		weekAnchor = parsed
	}

	goals, err := ctx.Store.GetAllWeeklyGoals()
	if err != nil {
		return err
	}
	goals = utils.GoalsForWeek(goals, weekAnchor)

	weekStart := utils.StartOfWeek(weekAnchor)
	if len(goals) == 0 {
		fmt.Printf("No goals for the week of %s.\n", utils.FormatShortDate(weekStart))
		return nil
	}

	fmt.Printf("Goals for the week of %s:\n\n", utils.FormatShortDate(weekStart))
	done := 0
	for _, goal := range goals {
		marker := "[ ]"
		if goal.Completed {
			marker = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", marker, goal.Title)
	}
	fmt.Printf("\nCompleted: %d/%d\n", done, len(goals))
	return nil
}

type GoalToggleCmd struct {
	Title string `arg:"" help:"Goal title."`
	Week  string `help:"Any date in the target week (YYYY-MM-DD, default: this week)." default:""`
}

func (c *GoalToggleCmd) Run(ctx *cli.Context) error {
	weekAnchor := time.Now()
	if c.Week != "" {
		parsed, err := utils.ParseDay(c.Week)
		if err != nil {
			return err
		}
		weekAnchor = parsed
	}

	goals, err := ctx.Store.GetAllWeeklyGoals()
	if err != nil {
		return err
	}

	for _, goal := range utils.GoalsForWeek(goals, weekAnchor) {
		if goal.Title != c.Title {
			continue
		}

		now := time.Now()
		goal.Completed = !goal.Completed
		goal.UpdatedAt = now
		if goal.Completed {
			goal.CompletedAt = &now
		} else {
			goal.CompletedAt = nil
		}

		if err := ctx.Store.UpdateWeeklyGoal(goal); err != nil {
			return err
		}

		if goal.Completed {
			fmt.Printf("Completed goal: %s\n", goal.Title)
		} else {
			fmt.Printf("Reopened goal: %s\n", goal.Title)
		}
		return nil
	}

	return fmt.Errorf("goal %q not found for that week", c.Title)
}

type GoalDeleteCmd struct {
	Title string `arg:"" help:"Goal title."`
	Week  string `help:"Any date in the target week (YYYY-MM-DD, default: this week)." default:""`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	weekAnchor := time.Now()
	if c.Week != "" {
		parsed, err := utils.ParseDay(c.Week)
		if err != nil {
			return err
		}
		weekAnchor = parsed
	}

	goals, err := ctx.Store.GetAllWeeklyGoals()
	if err != nil {
		return err
	}
	for _, goal := range utils.GoalsForWeek(goals, weekAnchor) {
		if goal.Title == c.Title {
			if err := ctx.Store.DeleteWeeklyGoal(goal.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted goal: %s\n", goal.Title)
			return nil
		}
	}
	return fmt.Errorf("goal %q not found for that week", c.Title)
}
