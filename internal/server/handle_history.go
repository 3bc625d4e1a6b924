package server

import (
	"net/http"
	"strconv"

	"github.com/toadygame/turtlesoup/internal/engine"
	"github.com/toadygame/turtlesoup/internal/quiz"
)

const defaultHistoryLimit = 50

type HistoryResponse struct {
	Turns []engine.Turn `json:"turns"`
}

// handleChatHistory returns the most recent transcript suffix so a client can
// rehydrate its chat window.
func handleChatHistory(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionId")
		if sessionID == "" {
			writeError(w, http.StatusBadRequest, "sessionId is required")
			return
		}
		quizID := r.URL.Query().Get("quizId")
		if quizID == "" {
			quizID = quiz.DefaultID
		}
		limit := defaultHistoryLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		turns, err := d.Transcript.Recent(r.Context(), sessionID, quizID, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if turns == nil {
			turns = []engine.Turn{}
		}
		writeJSON(w, http.StatusOK, HistoryResponse{Turns: turns})
	}
}
