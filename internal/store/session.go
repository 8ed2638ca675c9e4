package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Session is the indexed view of one exported recording session.
// Record holds the full session JSON as written to disk.
type Session struct {
	ID              string
	GestureName     string
	Category        string
	Attempt         int // zero for single takes, 1-based for batch takes
	RecordedAt      time.Time
	DurationSeconds float64
	TotalFrames     int
	AverageFPS      float64
	QualityScore    float64
	FilePath        string
	Record          json.RawMessage
	CreatedAt       time.Time
}

// GestureStats summarizes the stored sessions of one gesture.
type GestureStats struct {
	GestureName string
	Sessions    int
	TotalFrames int
	AvgDuration float64
	AvgQuality  float64
}

// SessionRepository provides CRUD operations for stored sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a session row. A missing ID is generated.
func (r *SessionRepository) Create(s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, gesture_name, category, attempt, recorded_at, duration_seconds,
		                       total_frames, average_fps, quality_score, file_path, record, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.GestureName, s.Category, s.Attempt, s.RecordedAt, s.DurationSeconds,
		s.TotalFrames, s.AverageFPS, s.QualityScore, s.FilePath, string(s.Record), s.CreatedAt,
	)
	return err
}

const sessionColumns = `id, gesture_name, category, attempt, recorded_at, duration_seconds,
	total_frames, average_fps, quality_score, file_path, record, created_at`

func scanSession(scan func(dest ...any) error) (*Session, error) {
	s := &Session{}
	var record string

	err := scan(&s.ID, &s.GestureName, &s.Category, &s.Attempt, &s.RecordedAt, &s.DurationSeconds,
		&s.TotalFrames, &s.AverageFPS, &s.QualityScore, &s.FilePath, &record, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.Record = json.RawMessage(record)
	return s, nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	row := r.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)

	s, err := scanSession(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// List retrieves all sessions, newest first.
func (r *SessionRepository) List() ([]*Session, error) {
	return r.query(`SELECT ` + sessionColumns + ` FROM sessions ORDER BY recorded_at DESC`)
}

// ListByGesture retrieves the sessions of one gesture, newest first.
func (r *SessionRepository) ListByGesture(gestureName string) ([]*Session, error) {
	return r.query(`SELECT `+sessionColumns+` FROM sessions WHERE gesture_name = ? ORDER BY recorded_at DESC`, gestureName)
}

func (r *SessionRepository) query(q string, args ...any) ([]*Session, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete removes a session by its ID.
func (r *SessionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats aggregates the stored sessions grouped by gesture name.
func (r *SessionRepository) Stats() ([]*GestureStats, error) {
	rows, err := r.db.Query(
		`SELECT gesture_name, COUNT(*), SUM(total_frames), AVG(duration_seconds), AVG(quality_score)
		 FROM sessions GROUP BY gesture_name ORDER BY gesture_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*GestureStats
	for rows.Next() {
		g := &GestureStats{}
		if err := rows.Scan(&g.GestureName, &g.Sessions, &g.TotalFrames, &g.AvgDuration, &g.AvgQuality); err != nil {
			return nil, err
		}
		stats = append(stats, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
