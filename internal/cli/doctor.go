package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/calebmarsh/tend/internal/backup"
	"github.com/calebmarsh/tend/internal/catalog"
	"github.com/calebmarsh/tend/internal/constants"
	"github.com/calebmarsh/tend/internal/models"
	"github.com/calebmarsh/tend/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	doc, err := ctx.Store.Load()
	if err != nil {
		fmt.Printf("FAIL  storage reachable\n      %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok    storage reachable\n")
	}

	if err := checkDocument(doc); err != nil {
		fmt.Printf("FAIL  document valid\n      %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok    document valid\n")
	}

	if unknown := unknownHabitIDs(doc); len(unknown) > 0 {
		// Stale catalog ids are harmless (they are skipped in views) but
		// worth surfacing.
		fmt.Printf("warn  unknown habit ids: %s\n", strings.Join(unknown, ", "))
	} else {
		fmt.Printf("ok    habit ids resolve in catalog\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("warn  backups present\n      %v\n", err)
	} else {
		fmt.Printf("ok    backups present\n")
	}

	if err := checkSQLite(ctx); err != nil {
		fmt.Printf("FAIL  database query\n      %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok    database query\n")
	}

	if others := otherRunningInstances(); len(others) > 0 {
		// The store assumes a single writer; concurrent processes can
		// silently lose each other's saves.
		fmt.Printf("warn  %d other %s process(es) running; last writer wins on shared storage\n", len(others), constants.AppName)
	} else {
		fmt.Printf("ok    single process\n")
	}

	if err := checkClock(ctx); err != nil {
		fmt.Printf("FAIL  clock sanity\n      %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok    clock sanity\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed.")
	return nil
}

func checkDocument(doc models.UserData) error {
	return doc.Validate()
}

func unknownHabitIDs(doc models.UserData) []string {
	var unknown []string
	for _, rec := range doc.ActiveHabits {
		if _, ok := catalog.Get(rec.HabitID); !ok {
			unknown = append(unknown, rec.HabitID)
		}
	}
	return unknown
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups yet, consider 'tend backup create'")
	}
	return nil
}

func checkSQLite(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON stores have nothing further to probe.
		return nil
	}

	db := sqliteStore.DB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

// otherRunningInstances lists other processes that share this binary's name.
func otherRunningInstances() []int {
	processes, err := ps.Processes()
	if err != nil {
		return nil
	}

	self := os.Getpid()
	binary := filepath.Base(os.Args[0])

	var pids []int
	for _, p := range processes {
		if p.Pid() != self && p.Executable() == binary {
			pids = append(pids, p.Pid())
		}
	}
	return pids
}

func checkClock(ctx *Context) error {
	now := ctx.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports %v, which looks wrong", now)
	}
	if _, err := time.Parse(constants.DateFormat, now.Format(constants.DateFormat)); err != nil {
		return fmt.Errorf("date formatting round trip failed: %w", err)
	}
	return nil
}
