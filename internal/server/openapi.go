package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Toady Quiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Toady daily yes/no deduction quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/chat
	postChat, _ := r.NewOperationContext(http.MethodPost, "/api/chat")
	postChat.SetSummary("Send one utterance")
	postChat.SetDescription("Runs one player utterance through the classification and judgment pipeline and returns the narrator's reply. @-prefixed commands are dispatched without touching the reasoning service.")
	postChat.AddReqStructure(ChatRequest{})
	postChat.AddRespStructure(ChatResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postChat.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postChat.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postChat.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postChat)

	// GET /api/chat/history
	getHistory, _ := r.NewOperationContext(http.MethodGet, "/api/chat/history")
	getHistory.SetSummary("Recent transcript")
	getHistory.SetDescription("Returns the most recent transcript suffix for a session.")
	getHistory.AddRespStructure(HistoryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHistory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getHistory)

	// GET /api/quiz/today
	getToday, _ := r.NewOperationContext(http.MethodGet, "/api/quiz/today")
	getToday.SetSummary("Today's quiz state")
	getToday.SetDescription("Returns today's quiz, the session's completion state, unlocked hints, and stats. The solution appears only once completed.")
	getToday.AddRespStructure(TodayResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getToday.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getToday)

	// POST /api/quiz/hint
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/quiz/hint")
	postHint.SetSummary("Unlock the next hint")
	postHint.SetDescription("Unlocks one more hint for today's quiz. Conflict once completed or when all hints are unlocked.")
	postHint.AddReqStructure(HintRequest{})
	postHint.AddRespStructure(HintResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postHint)

	// POST /api/quiz/reveal
	postReveal, _ := r.NewOperationContext(http.MethodPost, "/api/quiz/reveal")
	postReveal.SetSummary("Reveal the solution")
	postReveal.SetDescription("Explicit solution reveal; completes the day with success=false.")
	postReveal.AddReqStructure(RevealRequest{})
	postReveal.AddRespStructure(RevealResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postReveal.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postReveal)

	// DELETE /api/quiz/progress
	deleteProgress, _ := r.NewOperationContext(http.MethodDelete, "/api/quiz/progress")
	deleteProgress.SetSummary("Clear progress")
	deleteProgress.SetDescription("Deletes the session's daily progress record.")
	deleteProgress.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteProgress.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(deleteProgress)

	// GET /api/quiz/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/quiz/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of hint unlocks and completion for a session.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
