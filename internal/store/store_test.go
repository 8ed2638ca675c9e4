package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNew(t *testing.T) {
	s := newTestStore(t)

	if s.DB() == nil {
		t.Fatal("DB() returned nil")
	}

	// Migrations ran: the sessions table exists.
	var name string
	err := s.DB().QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'`,
	).Scan(&name)
	if err != nil {
		t.Fatalf("sessions table missing: %v", err)
	}
}

func TestNew_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s1.Close()

	// Migrations are idempotent on reopen.
	s2, err := New(path)
	if err != nil {
		t.Fatalf("reopen New() error = %v", err)
	}
	s2.Close()
}
