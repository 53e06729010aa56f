package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"arsipku/internal/contextutil"
	"arsipku/internal/feed"
)

// keepAliveInterval is how often an SSE comment line is sent so
// proxies do not drop an idle stream.
const keepAliveInterval = 25 * time.Second

// EventsHandler streams the change feed over Server-Sent Events.
type EventsHandler struct {
	hub *feed.Hub
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(hub *feed.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// ServeHTTP handles GET /api/events. Each change event is one SSE
// message with a JSON payload; the stream stays open until the client
// disconnects.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cancel := h.hub.Subscribe()
	defer cancel()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	logger.InfoContext(ctx, "event stream opened")
	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "event stream closed")
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				logger.ErrorContext(ctx, "failed to encode event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
