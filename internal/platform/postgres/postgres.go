package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

// Connect opens the database and waits for it to become reachable.
// The dashboards cannot do anything without the database, so a connection
// that never comes up is a fatal error for the caller.
func Connect(connStr string, log zerolog.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < connectAttempts; i++ {
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			log.Info().Msg("connected to database")
			return db, nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max", connectAttempts).Msg("waiting for database")
		time.Sleep(connectBackoff)
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", connectAttempts, err)
}

// Migrate applies the file migrations to the connected database.
func Migrate(connStr, sourcePath string, log zerolog.Logger) error {
	m, err := migrate.New("file://"+sourcePath, connStr)
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration up failed: %w", err)
	}
	log.Info().Msg("migrations applied")
	return nil
}
