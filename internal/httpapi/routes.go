package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flipseven/internal/client"
)

// SetupRoutes builds the local status surface for a headless client: a
// health probe and a read-only view of the latest render model.
func SetupRoutes(c *client.Client) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/state", State(c))
	return r
}
