package server

import (
	"errors"
	"net/http"

	"github.com/toadygame/turtlesoup/internal/daily"
	"github.com/toadygame/turtlesoup/internal/quiz"
)

type HintRequest struct {
	SessionID string `json:"sessionId"`
}

type HintResponse struct {
	Hint     string `json:"hint"`
	Level    int    `json:"level"`
	Total    int    `json:"total"`
	Unlocked int    `json:"unlocked"`
}

// handleHint unlocks the next hint for today's quiz. Unlock count only ever
// grows, one at a time, and stops at the quiz's hint list length.
func handleHint(d Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HintRequest
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

		level, err := d.Daily.UnlockHint(r.Context(), req.SessionID, len(q.Hints))
		switch {
		case errors.Is(err, daily.ErrCompleted):
			writeError(w, http.StatusConflict, "quiz already completed")
			return
		case errors.Is(err, daily.ErrNoMoreHints):
			writeError(w, http.StatusConflict, "no more hints")
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		broker.Publish(req.SessionID, SSEEvent{Type: "hint_unlocked", QuizID: q.ID, HintLevel: level})
		writeJSON(w, http.StatusOK, HintResponse{
			Hint:     q.Hints[level-1],
			Level:    level,
			Total:    len(q.Hints),
			Unlocked: level,
		})
	}
}
