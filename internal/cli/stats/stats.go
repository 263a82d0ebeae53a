package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kairoapp/kairo/internal/analytics"
	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(22)
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

type StatsCmd struct {
	Plain bool `help:"Print raw key=value output without formatting."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	snapshot, err := ctx.Store.Snapshot()
	if err != nil {
		return err
	}

	result := analytics.Calculate(
		snapshot.Tasks, snapshot.Habits, snapshot.TimeBlocks, snapshot.Goals,
		time.Now())

	if c.Plain {
		printPlain(result)
		return nil
	}

	fmt.Println(boxStyle.Render(render(result, snapshot.Habits)))
	return nil
}

func render(a models.AnalyticsState, habits []models.Habit) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Kairo Analytics"))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render("as of " + a.LastUpdated.Format("Mon, Jan 2 3:04 PM")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Tasks"))
	b.WriteString("\n")
	row(&b, "Total", fmt.Sprintf("%d", a.TaskStats.Total))
	row(&b, "Completed", fmt.Sprintf("%d (%.0f%%)", a.TaskStats.Completed, a.TaskStats.CompletionRate))
	row(&b, "In progress", fmt.Sprintf("%d", a.TaskStats.InProgress))
	row(&b, "To do", fmt.Sprintf("%d", a.TaskStats.Todo))
	row(&b, "By priority", fmt.Sprintf("%d high / %d medium / %d low",
		a.TaskStats.ByPriority.High, a.TaskStats.ByPriority.Medium, a.TaskStats.ByPriority.Low))
	if a.TaskStats.AverageCompletionTime > 0 {
		row(&b, "Avg time to done", fmt.Sprintf("%.1f hours", a.TaskStats.AverageCompletionTime))
	}

	b.WriteString(sectionStyle.Render("Habits"))
	b.WriteString("\n")
	row(&b, "Total", fmt.Sprintf("%d (%d active, %d archived)",
		a.HabitStats.Total, a.HabitStats.Active, a.HabitStats.Archived))
	row(&b, "Avg current streak", fmt.Sprintf("%d days", a.HabitStats.Streaks.Current))
	row(&b, "Longest streak ever", fmt.Sprintf("%d days", a.HabitStats.Streaks.Longest))
	row(&b, "Completion rate", fmt.Sprintf("%.1f%%", a.HabitStats.CompletionRate))
	if name := habitTitle(habits, a.HabitStats.MostConsistent); name != "" {
		row(&b, "Most consistent", name)
	}
	if name := habitTitle(habits, a.HabitStats.LeastConsistent); name != "" {
		row(&b, "Least consistent", name)
	}

	b.WriteString(sectionStyle.Render("Time Blocks"))
	b.WriteString("\n")
	row(&b, "Total", fmt.Sprintf("%d", a.TimeStats.TotalTimeBlocks))
	row(&b, "Planned hours", fmt.Sprintf("%.1f", a.TimeStats.TotalHours))
	if a.TimeStats.TotalTimeBlocks > 0 {
		row(&b, "Avg block length", fmt.Sprintf("%.0f minutes", a.TimeStats.AverageBlockLength))
	}
	row(&b, "Most productive day", a.TimeStats.MostProductiveDay)
	row(&b, "Most productive time", a.TimeStats.MostProductiveTime)

	b.WriteString(sectionStyle.Render("Weekly Goals"))
	b.WriteString("\n")
	row(&b, "Total", fmt.Sprintf("%d", a.GoalStats.Total))
	row(&b, "Completed", fmt.Sprintf("%d (%.0f%%)", a.GoalStats.Completed, a.GoalStats.CompletionRate))

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

// habitTitle resolves a habit id to its title for display. Stats carry
// ids so they stay stable across renames.
func habitTitle(habits []models.Habit, id string) string {
	if id == "" {
		return ""
	}
	for _, h := range habits {
		if h.ID == id {
			return h.Title
		}
	}
	return id
}

func printPlain(a models.AnalyticsState) {
	fmt.Printf("tasks.total=%d\n", a.TaskStats.Total)
	fmt.Printf("tasks.completed=%d\n", a.TaskStats.Completed)
	fmt.Printf("tasks.in_progress=%d\n", a.TaskStats.InProgress)
	fmt.Printf("tasks.todo=%d\n", a.TaskStats.Todo)
	fmt.Printf("tasks.completion_rate=%.2f\n", a.TaskStats.CompletionRate)
	fmt.Printf("tasks.avg_completion_hours=%.2f\n", a.TaskStats.AverageCompletionTime)
	fmt.Printf("habits.total=%d\n", a.HabitStats.Total)
	fmt.Printf("habits.active=%d\n", a.HabitStats.Active)
	fmt.Printf("habits.archived=%d\n", a.HabitStats.Archived)
	fmt.Printf("habits.streak_current=%d\n", a.HabitStats.Streaks.Current)
	fmt.Printf("habits.streak_longest=%d\n", a.HabitStats.Streaks.Longest)
	fmt.Printf("habits.completion_rate=%.2f\n", a.HabitStats.CompletionRate)
	fmt.Printf("habits.most_consistent=%s\n", a.HabitStats.MostConsistent)
	fmt.Printf("habits.least_consistent=%s\n", a.HabitStats.LeastConsistent)
	fmt.Printf("time.total_blocks=%d\n", a.TimeStats.TotalTimeBlocks)
	fmt.Printf("time.total_hours=%.2f\n", a.TimeStats.TotalHours)
	fmt.Printf("time.avg_block_minutes=%.2f\n", a.TimeStats.AverageBlockLength)
	fmt.Printf("time.most_productive_day=%s\n", a.TimeStats.MostProductiveDay)
	fmt.Printf("time.most_productive_time=%s\n", a.TimeStats.MostProductiveTime)
	fmt.Printf("goals.total=%d\n", a.GoalStats.Total)
	fmt.Printf("goals.completed=%d\n", a.GoalStats.Completed)
	fmt.Printf("goals.completion_rate=%.2f\n", a.GoalStats.CompletionRate)
}
