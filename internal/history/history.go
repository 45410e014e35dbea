// Package history keeps a per-round record of applied population plans so
// operators can audit scaling decisions after the fact.
package history

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

type Store struct {
	db     *sql.DB
	logger *log.Logger
}

type Round struct {
	At         time.Time
	Mode       string
	Humans     int
	Enemies    int
	Friendlies int
}

func Open(path string, logger *log.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS rounds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at TEXT NOT NULL,
		mode TEXT NOT NULL,
		humans INTEGER NOT NULL,
		enemies INTEGER NOT NULL,
		friendlies INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger}, nil
}

// RecordRound stores one applied plan. Write errors are logged and dropped,
// the history is not allowed to interfere with round processing.
func (s *Store) RecordRound(mode string, humans, enemies, friendlies int) {
	_, err := s.db.Exec(
		`INSERT INTO rounds (at, mode, humans, enemies, friendlies) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), mode, humans, enemies, friendlies,
	)
	if err != nil {
		s.logger.Printf("history: recording round: %v", err)
	}
}

// Recent returns up to n rounds, newest first.
func (s *Store) Recent(n int) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT at, mode, humans, enemies, friendlies FROM rounds ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var (
			r  Round
			at string
		)
		if err := rows.Scan(&at, &r.Mode, &r.Humans, &r.Enemies, &r.Friendlies); err != nil {
			return nil, err
		}
		r.At, err = time.Parse(time.RFC3339, at)
		if err != nil {
			s.logger.Printf("history: bad timestamp %q: %v", at, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

func (s *Store) Close() error { return s.db.Close() }
