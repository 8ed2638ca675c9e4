package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one row per exported recording session. The
		// record column carries the full session JSON; the remaining
		// columns are the queryable metadata subset.
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			gesture_name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			attempt INTEGER NOT NULL DEFAULT 0,
			recorded_at DATETIME NOT NULL,
			duration_seconds REAL NOT NULL,
			total_frames INTEGER NOT NULL,
			average_fps REAL NOT NULL,
			quality_score REAL NOT NULL DEFAULT 0,
			file_path TEXT NOT NULL DEFAULT '',
			record TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_sessions_gesture_name ON sessions(gesture_name)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_recorded_at ON sessions(recorded_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
