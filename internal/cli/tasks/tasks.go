package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/utils"
	"github.com/kairoapp/kairo/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Start  TaskStartCmd  `cmd:"" help:"Mark a task in progress."`
	Done   TaskDoneCmd   `cmd:"" help:"Mark a task completed."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `help:"Task description." default:""`
	Priority    string `help:"Priority: low, medium, or high." default:"medium"`
	Due         string `help:"Due date in YYYY-MM-DD format." default:""`
	Tags        string `help:"Comma-separated tags." default:""`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Priority:    constants.TaskPriority(c.Priority),
		Status:      constants.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Due != "" {
		due, err := utils.ParseDay(c.Due)
		if err != nil {
			return err
		}
		task.DueDate = &due
	}
	if c.Tags != "" {
		task.Tags = splitTags(c.Tags)
	}

	if err := validation.ValidateTask(task); err != nil {
		return err
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s\n", task.Title)
	return nil
}

type TaskListCmd struct {
	Status string `help:"Filter by status: todo, in_progress, or completed." default:""`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	if c.Status != "" {
		var filtered []models.Task
		for _, t := range tasks {
			if t.Status == constants.TaskStatus(c.Status) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, task := range tasks {
		marker := "[ ]"
		switch task.Status {
		case constants.StatusInProgress:
			marker = "[~]"
		case constants.StatusCompleted:
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s)", marker, task.Title, task.Priority)
		if task.DueDate != nil {
			line += fmt.Sprintf(" due %s", utils.FormatShortDate(*task.DueDate))
		}
		fmt.Println(line)
	}

	return nil
}

type TaskStartCmd struct {
	Title string `arg:"" help:"Task title."`
}

func (c *TaskStartCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.Title, constants.StatusInProgress)
}

type TaskDoneCmd struct {
	Title string `arg:"" help:"Task title."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.Title, constants.StatusCompleted)
}

type TaskDeleteCmd struct {
	Title string `arg:"" help:"Task title."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := findByTitle(ctx, c.Title)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}

func findByTitle(ctx *cli.Context, title string) (models.Task, error) {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return models.Task{}, err
	}
	for _, t := range tasks {
		if t.Title == title {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %q not found", title)
}

// setStatus transitions a task, keeping CompletedAt in lockstep with the
// completed status.
func setStatus(ctx *cli.Context, title string, status constants.TaskStatus) error {
	task, err := findByTitle(ctx, title)
	if err != nil {
		return err
	}

	now := time.Now()
	task.Status = status
	task.UpdatedAt = now
	if status == constants.StatusCompleted {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}

	fmt.Printf("Task %q is now %s\n", task.Title, status)
	return nil
}

func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
