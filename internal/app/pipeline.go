package app

import (
	"errors"
	"log"
	"time"

	"github.com/rkaroki/signstream/internal/capture"
	"github.com/rkaroki/signstream/internal/detector"
	"github.com/rkaroki/signstream/internal/motion"
)

// runPipeline is the capture loop. It reads frames on a ticker, feeds
// them through the activity gate and the hand detector, and builds one
// descriptor per frame with a detected hand.
//
// Frame rate policy: idle FPS while nothing moves, active FPS while the
// gate is open. A recording session forces the active rate for its
// whole duration; static handshapes hold still and would otherwise drop
// the gate mid-take.
func (a *App) runPipeline(stopCh chan struct{}) {
	defer a.wg.Done()

	idle := time.Second / time.Duration(a.cfg.Capture.IdleFPS)
	active := time.Second / time.Duration(a.cfg.Capture.ActiveFPS)

	interval := idle
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			a.mu.RLock()
			camera := a.camera
			det := a.detector
			recording := a.recording
			a.mu.RUnlock()

			frame, err := camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			gateOpen, _ := a.gate.Observe(frame)
			wantActive := gateOpen || recording

			if wantActive && interval != active {
				interval = active
				camera.SetFPS(a.cfg.Capture.ActiveFPS)
				ticker.Reset(interval)
				log.Println("Switched to active frame rate")
			} else if !wantActive && interval != idle {
				interval = idle
				camera.SetFPS(a.cfg.Capture.IdleFPS)
				ticker.Reset(interval)
				log.Println("Switched to idle frame rate")
			}

			if !wantActive || det == nil {
				frame.Close()
				continue
			}

			hands, err := det.Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}
			if len(hands) == 0 {
				continue
			}

			// Single-hand pipeline: the first detected hand wins.
			a.processHand(&hands[0], camera)
		}
	}
}

func (a *App) processHand(hand *detector.LandmarkFrame, camera capture.Camera) {
	width, height := camera.Size()
	size := &motion.FrameSize{Width: width, Height: height}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Outside a recording the history only backs the live stream; keep
	// it bounded.
	if !a.recording && a.builder.History().Len() >= monitorHistoryLimit {
		a.builder = a.newBuilder()
	}

	d, err := a.builder.Build(hand, size)
	if err != nil {
		if !errors.Is(err, motion.ErrInvalidFrame) {
			log.Printf("Error building descriptor: %v", err)
		}
		return
	}

	a.last = d
	a.publish(d)
}
