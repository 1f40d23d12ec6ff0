package http

import "net/http"

// Health handles GET /health. It reports liveness only; it does not touch
// the database, so the process supervisor restarts on crashes rather than on
// transient store outages.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
