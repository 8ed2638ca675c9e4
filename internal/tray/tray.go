// Package tray provides the system tray interface for controlling
// recording sessions.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the system tray menu: start/stop/cancel recording plus a
// read-only display of the last classified primitive.
type Tray struct {
	onStartStop func(recording bool)
	onCancel    func()
	onQuit      func()
	recording   bool
	mu          sync.RWMutex

	// Menu items stored for later updates
	menuRecord    *systray.MenuItem
	menuCancel    *systray.MenuItem
	menuPrimitive *systray.MenuItem
}

// New creates a new Tray instance.
func New() *Tray {
	return &Tray{}
}

// OnStartStop sets the callback for the record menu item. The argument
// is the new desired state: true to start recording, false to stop.
func (t *Tray) OnStartStop(fn func(recording bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onStartStop = fn
}

// OnCancel sets the callback for the cancel menu item.
func (t *Tray) OnCancel(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onCancel = fn
}

// OnQuit sets the callback for the quit menu item.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("SignStream")
	systray.SetTooltip("SignStream Motion Recorder")

	t.menuRecord = systray.AddMenuItem("● Start Recording", "Start a recording session")
	t.menuCancel = systray.AddMenuItem("Cancel Recording", "Discard the recording in progress")
	t.menuCancel.Disable()
	systray.AddSeparator()

	t.menuPrimitive = systray.AddMenuItem("Primitive: none", "Last classified hand primitive")
	t.menuPrimitive.Disable()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit SignStream")

	go func() {
		for {
			select {
			case <-t.menuRecord.ClickedCh:
				t.handleStartStop()
			case <-t.menuCancel.ClickedCh:
				t.handleCancel()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {
}

// handleStartStop toggles the recording state.
func (t *Tray) handleStartStop() {
	t.mu.Lock()
	t.recording = !t.recording
	recording := t.recording
	t.applyRecordingState(recording)
	callback := t.onStartStop
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks.
	if callback != nil {
		callback(recording)
	}
}

func (t *Tray) handleCancel() {
	t.mu.Lock()
	t.recording = false
	t.applyRecordingState(false)
	callback := t.onCancel
	t.mu.Unlock()

	if callback != nil {
		callback()
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// applyRecordingState updates the menu titles. Callers hold t.mu.
func (t *Tray) applyRecordingState(recording bool) {
	if t.menuRecord == nil {
		return
	}
	if recording {
		t.menuRecord.SetTitle("■ Stop Recording")
		t.menuCancel.Enable()
	} else {
		t.menuRecord.SetTitle("● Start Recording")
		t.menuCancel.Disable()
	}
}

// SetRecording forces the displayed recording state, for transitions
// initiated outside the tray (API, CLI).
func (t *Tray) SetRecording(recording bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.recording = recording
	t.applyRecordingState(recording)
}

// SetPrimitive updates the last primitive display in the menu.
func (t *Tray) SetPrimitive(name string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuPrimitive != nil {
		if name == "" {
			t.menuPrimitive.SetTitle("Primitive: none")
		} else {
			t.menuPrimitive.SetTitle("Primitive: " + name)
		}
	}
}

// IsRecording returns the displayed recording state.
func (t *Tray) IsRecording() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.recording
}
