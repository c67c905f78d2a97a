package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/calebmarsh/tend/internal/constants"
	"github.com/calebmarsh/tend/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS profile (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL,
	total_days_logged_in INTEGER NOT NULL,
	last_login_date TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	habit_id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	start_date TEXT NOT NULL,
	selected_method TEXT NOT NULL,
	streak INTEGER NOT NULL,
	last_completed TEXT
);
CREATE TABLE IF NOT EXISTS completions (
	habit_id TEXT NOT NULL,
	day TEXT NOT NULL,
	UNIQUE (habit_id, day)
);
CREATE TABLE IF NOT EXISTS relapses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	habit_id TEXT NOT NULL,
	day TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS notes (
	habit_id TEXT NOT NULL,
	day TEXT NOT NULL,
	note TEXT NOT NULL,
	PRIMARY KEY (habit_id, day)
);
`

// SQLiteStore persists the user document in a SQLite database. It keeps the
// same whole-document contract as JSONStore: Save rewrites every table in one
// transaction, and Load reconstructs the full document.
type SQLiteStore struct {
	path string
	db   *sql.DB
	now  func() time.Time
}

// NewSQLiteStore returns a store over path. The clock stamps the default
// document on first run, same contract as NewJSONStore.
func NewSQLiteStore(path string, now func() time.Time) *SQLiteStore {
	return &SQLiteStore{
		path: path,
		now:  now,
	}
}

func (s *SQLiteStore) today() string {
	return s.now().Format(constants.DateFormat)
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	s.db = db
	return nil
}

// Load reconstructs the document from the database. Any failure, including a
// database that cannot be opened or read, means first run: the default
// document comes back and the next Save starts fresh.
func (s *SQLiteStore) Load() (models.UserData, error) {
	doc, err := s.load()
	if err != nil {
		return DefaultUserData(s.today()), nil
	}
	return doc, nil
}

func (s *SQLiteStore) load() (models.UserData, error) {
	if err := s.open(); err != nil {
		return models.UserData{}, err
	}

	var doc models.UserData
	row := s.db.QueryRow(`SELECT name, total_days_logged_in, last_login_date FROM profile WHERE id = 1`)
	if err := row.Scan(&doc.Name, &doc.TotalDaysLoggedIn, &doc.LastLoginDate); err != nil {
		return models.UserData{}, err
	}

	rows, err := s.db.Query(`
		SELECT habit_id, start_date, selected_method, streak, last_completed
		FROM habits ORDER BY position`)
	if err != nil {
		return models.UserData{}, err
	}
	defer rows.Close()

	doc.ActiveHabits = []models.HabitProgress{}
	for rows.Next() {
		var p models.HabitProgress
		var lastCompleted sql.NullString
		if err := rows.Scan(&p.HabitID, &p.StartDate, &p.SelectedMethod, &p.Streak, &lastCompleted); err != nil {
			return models.UserData{}, err
		}
		if lastCompleted.Valid {
			p.LastCompleted = lastCompleted.String
		}
		doc.ActiveHabits = append(doc.ActiveHabits, p)
	}
	if err := rows.Err(); err != nil {
		return models.UserData{}, err
	}

	for i := range doc.ActiveHabits {
		p := &doc.ActiveHabits[i]

		p.Completions, err = s.queryDays(`SELECT day FROM completions WHERE habit_id = ? ORDER BY day`, p.HabitID)
		if err != nil {
			return models.UserData{}, err
		}

		p.Relapses, err = s.queryDays(`SELECT day FROM relapses WHERE habit_id = ? ORDER BY id`, p.HabitID)
		if err != nil {
			return models.UserData{}, err
		}

		p.Notes, err = s.queryNotes(p.HabitID)
		if err != nil {
			return models.UserData{}, err
		}
	}

	return doc, nil
}

func (s *SQLiteStore) queryDays(query, habitID string) ([]string, error) {
	rows, err := s.db.Query(query, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []string{}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *SQLiteStore) queryNotes(habitID string) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT day, note FROM notes WHERE habit_id = ?`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := map[string]string{}
	for rows.Next() {
		var day, note string
		if err := rows.Scan(&day, &note); err != nil {
			return nil, err
		}
		notes[day] = note
	}
	return notes, rows.Err()
}

// Save replaces the stored document in a single transaction.
func (s *SQLiteStore) Save(doc models.UserData) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"profile", "habits", "completions", "relapses", "notes"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO profile (id, name, total_days_logged_in, last_login_date) VALUES (1, ?, ?, ?)`,
		doc.Name, doc.TotalDaysLoggedIn, doc.LastLoginDate,
	); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	for pos, p := range doc.ActiveHabits {
		var lastCompleted interface{}
		if p.LastCompleted != "" {
			lastCompleted = p.LastCompleted
		}

		if _, err := tx.Exec(
			`INSERT INTO habits (habit_id, position, start_date, selected_method, streak, last_completed)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.HabitID, pos, p.StartDate, p.SelectedMethod, p.Streak, lastCompleted,
		); err != nil {
			return fmt.Errorf("failed to write habit %s: %w", p.HabitID, err)
		}

		for _, day := range p.Completions {
			if _, err := tx.Exec(`INSERT INTO completions (habit_id, day) VALUES (?, ?)`, p.HabitID, day); err != nil {
				return fmt.Errorf("failed to write completion: %w", err)
			}
		}
		for _, day := range p.Relapses {
			if _, err := tx.Exec(`INSERT INTO relapses (habit_id, day) VALUES (?, ?)`, p.HabitID, day); err != nil {
				return fmt.Errorf("failed to write relapse: %w", err)
			}
		}
		for day, note := range p.Notes {
			if _, err := tx.Exec(`INSERT INTO notes (habit_id, day, note) VALUES (?, ?, ?)`, p.HabitID, day, note); err != nil {
				return fmt.Errorf("failed to write note: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit document: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the underlying handle for diagnostics.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}
