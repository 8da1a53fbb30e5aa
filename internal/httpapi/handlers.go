package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"flipseven/internal/client"
	"flipseven/internal/view"
)

// State asks the client loop for its latest render model. Replies 204 until
// the first snapshot has arrived.
func State(c *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan *view.Model, 1)
		select {
		case c.Inbox() <- client.GetModel{Reply: reply}:
		case <-r.Context().Done():
			return
		}

		var m *view.Model
		select {
		case m = <-reply:
		case <-time.After(time.Second):
			http.Error(w, "client loop busy", http.StatusServiceUnavailable)
			return
		}

		if m == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(m)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
