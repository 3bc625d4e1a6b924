package server

import (
	"errors"
	"net/http"

	"github.com/toadygame/turtlesoup/internal/daily"
	"github.com/toadygame/turtlesoup/internal/quiz"
)

type TodayResponse struct {
	QuizID        string       `json:"quizId"`
	Title         string       `json:"title"`
	Scenario      string       `json:"scenario"`
	Completed     bool         `json:"completed"`
	HintsUnlocked int          `json:"hintsUnlocked"`
	TotalHints    int          `json:"totalHints"`
	Hints         []string     `json:"hints,omitempty"`
	Solution      string       `json:"solution,omitempty"`
	Stats         *daily.Stats `json:"stats,omitempty"`
}

// handleToday reports the session's state for today's quiz. The solution is
// included only once the quiz is completed.
func handleToday(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("sessionId")
		if sessionID == "" {
			writeError(w, http.StatusBadRequest, "sessionId is required")
			return
		}

		p, err := d.Daily.Current(r.Context(), sessionID)
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

		resp := TodayResponse{
			QuizID:        q.ID,
			Title:         q.Title,
			Scenario:      q.Scenario,
			Completed:     p.Completed,
			HintsUnlocked: p.HintsUnlocked,
			TotalHints:    len(q.Hints),
			Hints:         q.Hints[:p.HintsUnlocked],
			Stats:         p.Stats,
		}
		if p.Completed {
			resp.Solution = q.Solution
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
