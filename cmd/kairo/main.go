package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/cli/chat"
	"github.com/kairoapp/kairo/internal/cli/habits"
	"github.com/kairoapp/kairo/internal/cli/planner"
	"github.com/kairoapp/kairo/internal/cli/stats"
	"github.com/kairoapp/kairo/internal/cli/system"
	"github.com/kairoapp/kairo/internal/cli/tasks"
	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/errors"
	"github.com/kairoapp/kairo/internal/logger"
	"github.com/kairoapp/kairo/internal/storage"
	"github.com/kairoapp/kairo/internal/storage/postgres"
	"github.com/kairoapp/kairo/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging to stderr."`
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the environment, .pgpass, or the OS keyring instead." default:"${config_path}"`

	Init   system.InitCmd   `cmd:"" help:"Initialize kairo storage."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Task   tasks.TaskCmd    `cmd:"" help:"Manage tasks."`
	Habit  habits.HabitCmd  `cmd:"" help:"Manage habits and habit tracking."`
	Block  planner.BlockCmd `cmd:"" help:"Manage time blocks."`
	Goal   planner.GoalCmd  `cmd:"" help:"Manage weekly goals."`
	Stats  stats.StatsCmd   `cmd:"" help:"Show productivity analytics."`
	Chat   chat.ChatCmd     `cmd:"" help:"Talk to the productivity assistant."`
	ConfigCmd system.ConfigCmd `cmd:"" name:"config" help:"Manage kairo configuration."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker / day planner with streaks, analytics, and an assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":      constants.Version,
			"config_path":  constants.DefaultConfigPath,
			"habit_target": strconv.Itoa(constants.DefaultHabitTarget),
		},
	)

	configPath := expandHome(CLI.Config)

	// A PostgreSQL connection string may come from the --config flag, the
	// environment, or the OS keyring; anything else is a SQLite path.
	var store storage.Provider
	connStr := configPath
	if !isPostgres(connStr) && CLI.Config == constants.DefaultConfigPath {
		if resolved, err := storage.ResolveConnectionString(); err == nil && isPostgres(resolved) {
			connStr = resolved
		}
	}
	if isPostgres(connStr) {
		if storage.HasEmbeddedCredentials(connStr) {
			errors.Fatal(postgres.ErrEmbeddedCredentials)
		}
		store = postgres.NewStore(connStr)
	} else {
		store = sqlite.NewStore(configPath)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Init bootstraps its own schema; everything else loads first
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	logger.Debug("running command", "command", ctx.Command())
	errors.Fatal(ctx.Run(appCtx))
}

func isPostgres(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
