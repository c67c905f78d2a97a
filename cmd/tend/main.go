package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/calebmarsh/tend/internal/cli"
	"github.com/calebmarsh/tend/internal/logger"
	"github.com/calebmarsh/tend/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path." type:"path" default:"~/.config/tend/tend.json"`
	Debug   bool   `help:"Enable debug logging."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habits   cli.HabitsCmd   `cmd:"" help:"List habits from the catalog."`
	Show     cli.ShowCmd     `cmd:"" help:"Show catalog details for a habit."`
	Start    cli.StartCmd    `cmd:"" help:"Start tracking a habit."`
	Done     cli.DoneCmd     `cmd:"" help:"Mark a habit complete for a day."`
	Relapse  cli.RelapseCmd  `cmd:"" help:"Log a lapse on a habit you are breaking."`
	Note     cli.NoteCmd     `cmd:"" help:"Attach a journal note to a habit."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's checklist."`
	Progress cli.ProgressCmd `cmd:"" help:"Show streaks and overall stats."`
	Name     cli.NameCmd     `cmd:"" help:"Show or set your display name."`
	Hotline  cli.HotlineCmd  `cmd:"" help:"List support hotlines."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the data file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the data file from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks on the data file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tend"),
		kong.Description("Personal habit tracker for building and breaking habits"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Determine storage type based on extension. The store and the command
	// context share one clock.
	clock := time.Now
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".db") {
		store = storage.NewSQLiteStore(CLI.Config, clock)
	} else {
		store = storage.NewJSONStore(CLI.Config, clock)
	}
	appCtx := &cli.Context{
		Store: store,
		Now:   clock,
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
