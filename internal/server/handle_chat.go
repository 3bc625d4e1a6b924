package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/toadygame/turtlesoup/internal/daily"
	"github.com/toadygame/turtlesoup/internal/engine"
	"github.com/toadygame/turtlesoup/internal/quiz"
)

type ChatRequest struct {
	SessionID string        `json:"sessionId"`
	QuizID    string        `json:"quizId"`
	Text      string        `json:"text"`
	History   []engine.Turn `json:"history"`
}

type ChatResponse struct {
	Reply          string       `json:"reply"`
	Classification string       `json:"classification,omitempty"`
	Details        string       `json:"details,omitempty"`
	Command        string       `json:"command,omitempty"`
	Completed      bool         `json:"completed,omitempty"`
	Stats          *daily.Stats `json:"stats,omitempty"`
}

// Copy for the @-command paths. Intent-routed copy lives in the engine's
// composer; these replies belong to the command dispatch that runs before
// classification.
const (
	noHintsReply      = "힌트가 없습니다."
	hintsCappedReply  = "준비된 힌트를 모두 확인하셨어요."
	completedReply    = "오늘의 퀴즈는 이미 끝났어요. 내일 다시 만나요!"
	giveUpReplyPrefix = "포기하셨군요. 정답을 공개합니다."
)

func handleChat(d Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Text = strings.TrimSpace(req.Text)
		if req.SessionID == "" || req.Text == "" {
			writeError(w, http.StatusBadRequest, "sessionId and text are required")
			return
		}
		if req.QuizID == "" {
			req.QuizID = quiz.DefaultID
		}

		// Typed command dispatch runs before classification so UI commands
		// never reach the reasoning service.
		if cmd, ok := engine.ParseCommand(req.Text); ok {
			handleCommand(w, r, d, broker, req, cmd)
			return
		}

		if !d.LLMConfigured {
			writeError(w, http.StatusInternalServerError, "OPENAI_API_KEY is not set")
			return
		}

		q, err := d.Quizzes.Get(r.Context(), req.QuizID)
		if errors.Is(err, quiz.ErrNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		res := d.Engine.Handle(r.Context(), q, req.Text, req.History)

		// Transcript writes are the caller's side effect, not the pipeline's.
		// A logging failure must not cost the player their reply.
		if err := d.Transcript.Append(r.Context(), req.SessionID, q.ID, engine.RolePlayer, req.Text); err != nil {
			d.Logger.Warn("appending player turn failed", "error", err)
		}
		if err := d.Transcript.Append(r.Context(), req.SessionID, q.ID, engine.RoleNarrator, res.Reply); err != nil {
			d.Logger.Warn("appending narrator turn failed", "error", err)
		}

		resp := ChatResponse{
			Reply:          res.Reply,
			Classification: string(res.Classification),
			Details:        res.Details,
		}

		if res.Classification == engine.IntentGuess && res.Details == engine.VerdictCorrect {
			count, err := d.Transcript.CountPlayer(r.Context(), req.SessionID, q.ID)
			if err != nil {
				d.Logger.Warn("counting player turns failed", "error", err)
			}
			stats, err := d.Daily.MarkCompleted(r.Context(), req.SessionID, true, count)
			if err != nil {
				d.Logger.Error("marking completion failed", "error", err)
			} else {
				resp.Completed = true
				resp.Stats = &stats
				broker.Publish(req.SessionID, SSEEvent{Type: "quiz_completed", QuizID: q.ID, Success: true})
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleCommand(w http.ResponseWriter, r *http.Request, d Deps, broker *Broker, req ChatRequest, cmd engine.Command) {
	q, err := d.Quizzes.Get(r.Context(), req.QuizID)
	if errors.Is(err, quiz.ErrNotFound) {
		writeError(w, http.StatusNotFound, "quiz not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch cmd {
	case engine.CommandHint:
		level, err := d.Daily.UnlockHint(r.Context(), req.SessionID, len(q.Hints))
		switch {
		case errors.Is(err, daily.ErrCompleted):
			writeJSON(w, http.StatusOK, ChatResponse{Reply: completedReply, Command: "hint"})
		case errors.Is(err, daily.ErrNoMoreHints):
			reply := hintsCappedReply
			if len(q.Hints) == 0 {
				reply = noHintsReply
			}
			writeJSON(w, http.StatusOK, ChatResponse{Reply: reply, Command: "hint"})
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			broker.Publish(req.SessionID, SSEEvent{Type: "hint_unlocked", QuizID: q.ID, HintLevel: level})
			writeJSON(w, http.StatusOK, ChatResponse{Reply: "힌트: " + q.Hints[level-1], Command: "hint"})
		}

	case engine.CommandReveal, engine.CommandGiveUp:
		count, err := d.Transcript.CountPlayer(r.Context(), req.SessionID, q.ID)
		if err != nil {
			d.Logger.Warn("counting player turns failed", "error", err)
		}
		stats, err := d.Daily.MarkCompleted(r.Context(), req.SessionID, false, count)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		broker.Publish(req.SessionID, SSEEvent{Type: "quiz_completed", QuizID: q.ID, Success: stats.Success})

		reply := "정답: " + q.Solution
		command := "reveal"
		if cmd == engine.CommandGiveUp {
			reply = giveUpReplyPrefix + " 정답: " + q.Solution
			command = "give_up"
		}
		writeJSON(w, http.StatusOK, ChatResponse{
			Reply:     reply,
			Command:   command,
			Completed: true,
			Stats:     &stats,
		})
	}
}
