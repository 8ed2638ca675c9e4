package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rkaroki/signstream/internal/app"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local daemon, local clients
	},
}

// LiveHandler streams motion descriptors to WebSocket clients as they
// are built by the pipeline.
type LiveHandler struct {
	app *app.App
}

// NewLiveHandler creates a LiveHandler backed by the given app.
func NewLiveHandler(a *app.App) *LiveHandler {
	return &LiveHandler{app: a}
}

// ServeHTTP upgrades the connection and forwards descriptors until the
// client disconnects.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	descriptors, cancel := h.app.Subscribe()
	defer cancel()

	// Drain client messages so pings and close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case d, ok := <-descriptors:
			if !ok {
				return
			}
			if err := conn.WriteJSON(d); err != nil {
				return
			}
		}
	}
}
