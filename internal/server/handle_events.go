package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func handleEvents(g Game, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		ch := broker.subscribe()
		defer broker.unsubscribe(ch)

		// A fresh stream starts from the current state.
		if data, err := json.Marshal(g.Snapshot()); err == nil {
			writeFrame(w, frame{event: eventState, data: data})
		}
		flusher.Flush()

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case f := <-ch:
				writeFrame(w, f)
				flusher.Flush()
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}

func writeFrame(w http.ResponseWriter, f frame) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", f.event, f.data)
}
