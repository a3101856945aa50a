package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
)

// streamEvents relays broker events as server-sent events. The optional
// "playlist" query parameter keeps only events of that playlist. The stream
// ends when the client goes away or the broker is closed.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	broker := h.services.Broker
	if broker == nil {
		http.Error(w, "event stream is disabled", http.StatusServiceUnavailable)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Str("func", "Handler.streamEvents").Err(ErrStreamingUnsupported).Send()
		http.Error(w, ErrStreamingUnsupported.Error(), http.StatusInternalServerError)
		return
	}

	filter := r.URL.Query().Get("playlist")

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-sub:
			if !open {
				return
			}
			if filter != "" && ev.PlaylistID != filter {
				continue
			}
			if err := writeEvent(w, ev); err != nil {
				log.Warn().Err(err).Str("func", "Handler.streamEvents").Msg("failed to write event")
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, ev events.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, payload)
	return err
}
