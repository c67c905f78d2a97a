package cli

import (
	"fmt"
	"time"

	"github.com/calebmarsh/tend/internal/constants"
	"github.com/calebmarsh/tend/internal/logger"
	"github.com/calebmarsh/tend/internal/models"
	"github.com/calebmarsh/tend/internal/storage"
)

// Context is shared by every command.
type Context struct {
	Store storage.Provider
	Now   func() time.Time
}

// Today returns the current calendar date.
func (c *Context) Today() string {
	return c.Now().Format(constants.DateFormat)
}

// OpenDocument loads the user document and records today's login, persisting
// the accrual when this is the first open of the day. Every command that
// touches progress goes through here, so totalDaysLoggedIn counts distinct
// days of use.
func (c *Context) OpenDocument() (models.UserData, error) {
	doc, err := c.Store.Load()
	if err != nil {
		return models.UserData{}, err
	}

	updated := storage.RecordLogin(doc, c.Today())
	if updated.LastLoginDate != doc.LastLoginDate {
		logger.Debug("recording login", "day", updated.LastLoginDate, "total", updated.TotalDaysLoggedIn)
		if err := c.Store.Save(updated); err != nil {
			return models.UserData{}, err
		}
	}

	return updated, nil
}

// resolveDay turns a --date flag value into a calendar date, defaulting to
// today and rejecting anything that is not YYYY-MM-DD.
func (c *Context) resolveDay(flag string) (string, error) {
	if flag == "" || flag == "today" {
		return c.Today(), nil
	}
	if _, err := time.Parse(constants.DateFormat, flag); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", flag)
	}
	return flag, nil
}
