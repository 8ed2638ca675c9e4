package hook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeHook(t *testing.T, dir, name, manifest string) {
	t.Helper()

	hookDir := filepath.Join(dir, name)
	if err := os.MkdirAll(hookDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hookDir, "hook.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestManager_Discover(t *testing.T) {
	dir := t.TempDir()

	writeHook(t, dir, "archive", `{
		"name": "archive",
		"version": "1.0.0",
		"description": "copies exported sessions",
		"executable": "run.sh",
		"events": ["session.exported"]
	}`)
	writeHook(t, dir, "notify", `{
		"name": "notify",
		"version": "0.1.0",
		"executable": "notify",
		"events": []
	}`)

	m := NewManager(dir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(m.List()) != 2 {
		t.Fatalf("List() returned %d hooks, want 2", len(m.List()))
	}

	h, err := m.Get("archive")
	if err != nil {
		t.Fatalf("Get(archive) error = %v", err)
	}
	if h.Executable != filepath.Join(dir, "archive", "run.sh") {
		t.Errorf("Executable = %q", h.Executable)
	}
	if !h.Subscribed(EventSessionExported) {
		t.Error("archive hook should subscribe to session.exported")
	}
}

func TestManager_Discover_MissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))

	if err := m.Discover(); err != nil {
		t.Errorf("Discover() on missing dir error = %v, want nil", err)
	}
	if len(m.List()) != 0 {
		t.Errorf("List() returned %d hooks, want 0", len(m.List()))
	}
}

func TestManager_Discover_SkipsInvalid(t *testing.T) {
	dir := t.TempDir()

	writeHook(t, dir, "broken", `not json`)
	writeHook(t, dir, "nameless", `{"executable": "run.sh"}`)
	writeHook(t, dir, "good", `{"name": "good", "executable": "run.sh", "events": ["session.exported"]}`)

	// A plain file in the hook dir is ignored.
	if err := os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(m.List()) != 1 {
		t.Fatalf("List() returned %d hooks, want 1", len(m.List()))
	}
	if _, err := m.Get("good"); err != nil {
		t.Errorf("Get(good) error = %v", err)
	}
}

func TestManager_Get_NotFound(t *testing.T) {
	m := NewManager(t.TempDir())
	m.Discover()

	if _, err := m.Get("missing"); !errors.Is(err, ErrHookNotFound) {
		t.Errorf("Get(missing): err = %v, want ErrHookNotFound", err)
	}
}

func TestManager_ForEvent(t *testing.T) {
	dir := t.TempDir()

	writeHook(t, dir, "a", `{"name": "a", "executable": "run.sh", "events": ["session.exported"]}`)
	writeHook(t, dir, "b", `{"name": "b", "executable": "run.sh", "events": ["other.event"]}`)

	m := NewManager(dir)
	if err := m.Discover(); err != nil {
		t.Fatal(err)
	}

	hooks := m.ForEvent(EventSessionExported)
	if len(hooks) != 1 || hooks[0].Manifest.Name != "a" {
		t.Errorf("ForEvent(session.exported) = %v hooks", len(hooks))
	}
}

func TestManager_Rediscover(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "a", `{"name": "a", "executable": "run.sh", "events": []}`)

	m := NewManager(dir)
	if err := m.Discover(); err != nil {
		t.Fatal(err)
	}

	// Removing the hook and rediscovering drops it.
	if err := os.RemoveAll(filepath.Join(dir, "a")); err != nil {
		t.Fatal(err)
	}
	if err := m.Discover(); err != nil {
		t.Fatal(err)
	}
	if len(m.List()) != 0 {
		t.Errorf("List() returned %d hooks after rediscover, want 0", len(m.List()))
	}
}
