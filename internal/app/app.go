// Package app wires the capture, detection, and descriptor pipeline
// together and owns the recording lifecycle.
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/rkaroki/signstream/internal/capture"
	"github.com/rkaroki/signstream/internal/config"
	"github.com/rkaroki/signstream/internal/detector"
	"github.com/rkaroki/signstream/internal/hook"
	"github.com/rkaroki/signstream/internal/motion"
	"github.com/rkaroki/signstream/internal/record"
	"github.com/rkaroki/signstream/internal/store"
)

// monitorHistoryLimit caps the idle monitoring history. Outside a
// recording the history only feeds the live stream, so it is cleared
// once it grows past this.
const monitorHistoryLimit = 300

// ErrNotRecording is returned when stopping or cancelling without an
// active recording.
var ErrNotRecording = errors.New("no recording in progress")

// ErrRecordingTooShort is returned when a stopped recording does not
// reach the minimum frame count and is discarded.
var ErrRecordingTooShort = errors.New("recording too short")

// ExportResult describes one completed recording export.
type ExportResult struct {
	SessionID string
	FilePath  string
	Record    *motion.SessionRecord
	Quality   record.QualityCheck
}

// App is the main application: it runs the capture pipeline and exposes
// the recording operations used by the tray, the HTTP API, and the CLI.
type App struct {
	cfg      *config.Config
	camera   capture.Camera
	gate     *capture.ActivityGate
	detector detector.Detector
	store    *store.Store
	hookMgr  *hook.Manager
	hookExec *hook.Executor

	mu        sync.RWMutex
	builder   *motion.Builder
	recording bool
	gesture   string
	category  string
	attempt   int
	last      *motion.MotionDescriptor
	stopCh    chan struct{}
	wg        sync.WaitGroup

	subMu sync.Mutex
	subs  map[chan *motion.MotionDescriptor]struct{}
}

// New creates an App from the given configuration. The store may be
// nil; exported sessions are then only written to disk.
func New(cfg *config.Config, st *store.Store) *App {
	a := &App{
		cfg:      cfg,
		camera:   capture.NewCamera(cfg.Capture.DeviceID),
		gate:     capture.NewActivityGate(cfg.Capture.MotionThreshold, cfg.Capture.HoldFrames),
		store:    st,
		hookMgr:  hook.NewManager(cfg.Hooks.Dir),
		hookExec: hook.NewExecutor(time.Duration(cfg.Hooks.TimeoutSeconds) * time.Second),
		subs:     make(map[chan *motion.MotionDescriptor]struct{}),
	}
	a.builder = a.newBuilder()

	// Try MediaPipe first, fall back to mock detector.
	dcfg := detector.Config{
		MaxHands:        cfg.Detector.MaxHands,
		MinConfidence:   cfg.Detector.MinConfidence,
		MinTrackingConf: cfg.Detector.MinTracking,
	}
	if mp, err := detector.NewMediaPipeDetector(dcfg); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

func (a *App) newBuilder() *motion.Builder {
	b := motion.NewBuilder(motion.NewHistory())
	b.Classifier = &motion.Classifier{PinchThreshold: a.cfg.Motion.PinchThreshold}
	return b
}

// SetDetector replaces the hand detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the camera implementation.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// DiscoverHooks scans the hook directory for export hooks.
func (a *App) DiscoverHooks() error {
	return a.hookMgr.Discover()
}

// Hooks returns the hook manager.
func (a *App) Hooks() *hook.Manager {
	return a.hookMgr
}

// Store returns the session store, which may be nil.
func (a *App) Store() *store.Store {
	return a.store
}

// Start opens the camera and begins the capture pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	a.camera.SetFPS(a.cfg.Capture.IdleFPS)

	a.stopCh = make(chan struct{})
	a.wg.Add(1)
	go a.runPipeline(a.stopCh)

	log.Println("Capture pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	a.mu.Unlock()

	a.wg.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.gate.Close()
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Capture pipeline stopped")
}

// StartRecording begins a recording session for the named gesture. Any
// idle monitoring frames are discarded first.
func (a *App) StartRecording(gestureName string) error {
	return a.StartRecordingAttempt(gestureName, 0)
}

// StartRecordingAttempt begins a batch take. An attempt number above
// zero is embedded in the exported filename.
func (a *App) StartRecordingAttempt(gestureName string, attempt int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.recording {
		return fmt.Errorf("already recording %q", a.gesture)
	}

	a.builder = a.newBuilder()
	a.recording = true
	a.gesture = gestureName
	a.attempt = attempt
	a.category = ""
	if _, category, ok := record.FindGesture(gestureName); ok {
		a.category = category
	}

	log.Printf("Recording started: %s", gestureName)
	return nil
}

// CancelRecording discards the recording in progress.
func (a *App) CancelRecording() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.recording {
		return ErrNotRecording
	}

	a.recording = false
	a.gesture = ""
	a.attempt = 0
	a.builder.History().Clear()

	log.Println("Recording cancelled")
	return nil
}

// StopRecording ends the session, exports it to disk, indexes it in the
// store, and fires the export hooks. A session under the minimum frame
// count is discarded with ErrRecordingTooShort.
func (a *App) StopRecording() (*ExportResult, error) {
	a.mu.Lock()

	if !a.recording {
		a.mu.Unlock()
		return nil, ErrNotRecording
	}

	a.recording = false
	gesture := a.gesture
	category := a.category
	attempt := a.attempt
	a.gesture = ""
	a.attempt = 0
	// Detach the session history before releasing the lock: the pipeline
	// keeps building into the fresh history, so the export below reads a
	// private snapshot and post-stop frames cannot leak into it.
	history := a.builder.History()
	a.builder = a.newBuilder()
	a.mu.Unlock()

	if n := history.Len(); n < a.cfg.Recording.MinFrames {
		return nil, fmt.Errorf("%w: %d frames, need %d", ErrRecordingTooShort, n, a.cfg.Recording.MinFrames)
	}

	rec, err := motion.Export(history, gesture, nil)
	if err != nil {
		return nil, err
	}
	stats := motion.Aggregate(history)
	quality := record.CheckQualityAgainst(stats, record.Thresholds{
		MinFPS:    a.cfg.Recording.QualityMinFPS,
		MinFrames: a.cfg.Recording.QualityMinFrames,
	})

	if err := os.MkdirAll(a.cfg.Recording.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	filename := record.Filename(gesture, rec.Metadata.RecordedAt)
	if attempt > 0 {
		filename = record.AttemptFilename(gesture, attempt, rec.Metadata.RecordedAt)
	}
	path := record.OutputPath(a.cfg.Recording.DataDir, filename)
	if err := rec.WriteFile(path); err != nil {
		return nil, err
	}

	result := &ExportResult{FilePath: path, Record: rec, Quality: quality}

	if a.store != nil {
		raw, err := rec.Encode()
		if err != nil {
			return nil, err
		}
		row := &store.Session{
			GestureName:     gesture,
			Category:        category,
			Attempt:         attempt,
			RecordedAt:      rec.Metadata.RecordedAt,
			DurationSeconds: rec.Metadata.DurationSeconds,
			TotalFrames:     rec.Metadata.TotalFrames,
			AverageFPS:      rec.Metadata.AverageFPS,
			QualityScore:    quality.Score,
			FilePath:        path,
			Record:          raw,
		}
		if err := a.store.Sessions().Create(row); err != nil {
			return nil, fmt.Errorf("index session: %w", err)
		}
		result.SessionID = row.ID
	}

	for _, warning := range quality.Warnings {
		log.Printf("Quality warning for %s: %s", gesture, warning)
	}

	a.fireExportHooks(result, gesture)

	log.Printf("Recording exported: %s (%d frames, quality %.2f)", path, rec.Metadata.TotalFrames, quality.Score)
	return result, nil
}

func (a *App) fireExportHooks(result *ExportResult, gesture string) {
	raw, err := result.Record.Encode()
	if err != nil {
		log.Printf("Error encoding hook payload: %v", err)
		return
	}

	req := &hook.Request{
		Event:       hook.EventSessionExported,
		SessionID:   result.SessionID,
		GestureName: gesture,
		FilePath:    result.FilePath,
		Metadata:    raw,
	}
	for _, err := range a.hookExec.Fire(a.hookMgr, req) {
		log.Printf("Export hook error: %v", err)
	}
}

// Recording reports whether a recording session is in progress, and the
// gesture being recorded.
func (a *App) Recording() (bool, string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.recording, a.gesture
}

// FrameCount returns the number of descriptors captured so far in the
// current session.
func (a *App) FrameCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.builder.History().Len()
}

// LastDescriptor returns the most recently built descriptor, or nil.
func (a *App) LastDescriptor() *motion.MotionDescriptor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.last
}

// Active reports whether the activity gate currently sees motion.
func (a *App) Active() bool {
	return a.gate.Active()
}

// DataDir returns the session output directory.
func (a *App) DataDir() string {
	return a.cfg.Recording.DataDir
}

// Subscribe registers a live descriptor stream. The returned cancel
// function must be called to release the subscription. Slow consumers
// lose frames rather than stalling the pipeline.
func (a *App) Subscribe() (<-chan *motion.MotionDescriptor, func()) {
	ch := make(chan *motion.MotionDescriptor, 16)

	a.subMu.Lock()
	a.subs[ch] = struct{}{}
	a.subMu.Unlock()

	cancel := func() {
		a.subMu.Lock()
		if _, ok := a.subs[ch]; ok {
			delete(a.subs, ch)
			close(ch)
		}
		a.subMu.Unlock()
	}
	return ch, cancel
}

func (a *App) publish(d *motion.MotionDescriptor) {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	for ch := range a.subs {
		select {
		case ch <- d:
		default:
		}
	}
}
