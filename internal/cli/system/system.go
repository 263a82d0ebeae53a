package system

import (
	"errors"
	"fmt"

	"github.com/kairoapp/kairo/internal/cli"
	"github.com/kairoapp/kairo/internal/keyring"
	"github.com/kairoapp/kairo/internal/storage"
	"github.com/kairoapp/kairo/internal/storage/postgres"
	"github.com/kairoapp/kairo/internal/tui"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}

type ConfigCmd struct {
	SetConnection   ConfigSetConnectionCmd   `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	ClearConnection ConfigClearConnectionCmd `cmd:"" help:"Remove the stored PostgreSQL connection string."`
	Show            ConfigShowCmd            `cmd:"" help:"Show the active storage location."`
}

type ConfigSetConnectionCmd struct {
	ConnString string `arg:"" help:"PostgreSQL connection string (no embedded password)."`
}

func (c *ConfigSetConnectionCmd) Run(ctx *cli.Context) error {
	if err := postgres.ValidateConnString(c.ConnString); err != nil {
		return err
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in the OS keyring.")
	return nil
}

type ConfigClearConnectionCmd struct{}

func (c *ConfigClearConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("Connection string removed from the OS keyring.")
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Storage: %s\n", ctx.Store.GetConfigPath())
	if connStr, err := storage.ResolveConnectionString(); err == nil && connStr != "" {
		fmt.Println("A PostgreSQL connection string is configured.")
	}
	return nil
}

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	return tui.Run(ctx.Store)
}
