package server

import (
	"errors"
	"net/http"

	"github.com/toadygame/turtlesoup/internal/daily"
	"github.com/toadygame/turtlesoup/internal/quiz"
)

type RevealRequest struct {
	SessionID string `json:"sessionId"`
}

type RevealResponse struct {
	Solution string      `json:"solution"`
	Stats    daily.Stats `json:"stats"`
}

// handleReveal is the explicit player-initiated solution reveal. It completes
// the day with success=false; if the day is already completed, the persisted
// stats come back untouched.
func handleReveal(d Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RevealRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.SessionID == "" {
			writeError(w, http.StatusBadRequest, "sessionId is required")
			return
		}

		p, err := d.Daily.Current(r.Context(), req.SessionID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		q, err := d.Quizzes.Get(r.Context(), p.QuizID)
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		count, err := d.Transcript.CountPlayer(r.Context(), req.SessionID, q.ID)
		if err != nil {
			d.Logger.Warn("counting player turns failed", "error", err)
		}

		alreadyDone := p.Completed
		stats, err := d.Daily.MarkCompleted(r.Context(), req.SessionID, false, count)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !alreadyDone {
			broker.Publish(req.SessionID, SSEEvent{Type: "quiz_completed", QuizID: q.ID, Success: false})
		}

		writeJSON(w, http.StatusOK, RevealResponse{Solution: q.Solution, Stats: stats})
	}
}
