package chat

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/kairoapp/kairo/internal/assistant"
	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/models"
)

var (
	promptStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	faintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type ChatCmd struct {
	Message string `arg:"" optional:"" help:"Send a single message instead of starting a session."`
}

func (c *ChatCmd) Run(ctx *cli.Context) error {
	bot := assistant.New()

	if c.Message != "" {
		fmt.Println(assistantStyle.Render("Kairo: ") + bot.SendMessage(c.Message))
		return nil
	}

	fmt.Println(assistantStyle.Render("Kairo") + " productivity assistant. Type 'exit' to quit.")
	fmt.Println()

	now := time.Now()
	conversation := models.Conversation{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("you> "))
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		if conversation.Title == "" {
			conversation.Title = assistant.GenerateTitle(message)
		}

		reply := bot.SendMessage(message)
		now = time.Now()
		conversation.Messages = append(conversation.Messages,
			models.Message{
				ID:        uuid.New().String(),
				Role:      models.RoleUser,
				Content:   message,
				Timestamp: now,
			},
			models.Message{
				ID:        uuid.New().String(),
				Role:      models.RoleAssistant,
				Content:   reply,
				Timestamp: now,
			})
		conversation.UpdatedAt = now

		fmt.Println(assistantStyle.Render("Kairo: ") + reply)
		fmt.Println()
	}

	if len(conversation.Messages) > 0 {
		fmt.Println(faintStyle.Render(fmt.Sprintf("Session %q, %d messages",
			conversation.Title, len(conversation.Messages))))
	}
	return scanner.Err()
}
