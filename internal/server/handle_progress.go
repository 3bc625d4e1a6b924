package server

import "net/http"

// handleClearProgress wipes the session's daily record so the player can
// start today's quiz over.
func handleClearProgress(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionId")
		if sessionID == "" {
			writeError(w, http.StatusBadRequest, "sessionId is required")
			return
		}

		if err := d.Daily.ClearProgress(r.Context(), sessionID); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
