package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/toadygame/turtlesoup/internal/daily"
	"github.com/toadygame/turtlesoup/internal/database"
	"github.com/toadygame/turtlesoup/internal/engine"
	"github.com/toadygame/turtlesoup/internal/migrations"
	"github.com/toadygame/turtlesoup/internal/quiz"
)

// scriptedLLM replays canned completions in order; an empty string scripts a
// failed call.
type scriptedLLM struct {
	outputs []string
}

func (s *scriptedLLM) Complete(_ context.Context, _, _ string) (string, error) {
	if len(s.outputs) == 0 {
		return "", errors.New("no scripted output left")
	}
	out := s.outputs[0]
	s.outputs = s.outputs[1:]
	if out == "" {
		return "", errors.New("scripted failure")
	}
	return out, nil
}

func setupDeps(t *testing.T, llm *scriptedLLM) Deps {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	quizzes := quiz.NewSQLiteStore(db)
	if err := quizzes.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return Deps{
		Logger:        logger,
		DB:            db,
		Quizzes:       quizzes,
		Daily:         daily.NewMachine(daily.NewSQLiteStore(db), quiz.CatalogueIDs),
		Engine:        engine.New(llm, logger),
		Transcript:    NewSQLiteTranscript(db),
		LLMConfigured: true,
	}
}

func testRouter(t *testing.T, d Deps) *chi.Mux {
	t.Helper()
	broker := NewBroker()

	r := chi.NewRouter()
	r.Post("/api/chat", handleChat(d, broker))
	r.Get("/api/chat/history", handleChatHistory(d))
	r.Get("/api/quiz/today", handleToday(d))
	r.Post("/api/quiz/hint", handleHint(d, broker))
	r.Post("/api/quiz/reveal", handleReveal(d, broker))
	r.Delete("/api/quiz/progress", handleClearProgress(d))
	return r
}

func postChat(t *testing.T, r http.Handler, req ChatRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func TestChatYesNoQuestion(t *testing.T) {
	llm := &scriptedLLM{outputs: []string{
		`{"classification": "YESNO"}`,
		`{"label": "NO_CORE"}`,
	}}
	r := testRouter(t, setupDeps(t, llm))

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "사람이 죽었나요?"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Classification != "YESNO" || resp.Details != "NO_CORE" {
		t.Errorf("unexpected classification %q/%q", resp.Classification, resp.Details)
	}
	if !strings.HasPrefix(resp.Reply, "아니요,") {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
	if resp.Completed {
		t.Error("a yes/no question must not complete the quiz")
	}
}

func TestChatRecordsTranscript(t *testing.T) {
	llm := &scriptedLLM{outputs: []string{
		`{"classification": "YESNO"}`,
		`{"label": "YES_PERIPHERAL"}`,
	}}
	d := setupDeps(t, llm)
	r := testRouter(t, d)

	postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "상자가 있었나요?"})

	turns, err := d.Transcript.Recent(context.Background(), "sess-1", "toady-001", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected player + narrator turns, got %d", len(turns))
	}
	if turns[0].Role != engine.RolePlayer || turns[0].Content != "상자가 있었나요?" {
		t.Errorf("unexpected player turn %+v", turns[0])
	}
	if turns[1].Role != engine.RoleNarrator {
		t.Errorf("unexpected narrator turn %+v", turns[1])
	}
}

func TestChatCorrectGuessCompletes(t *testing.T) {
	llm := &scriptedLLM{outputs: []string{
		`{"classification": "GUESS"}`,
		`{"label": "CORRECT"}`,
	}}
	r := testRouter(t, setupDeps(t, llm))

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "드라이아이스가 승화해서 사라진 거예요"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Reply != "정답입니다! 👏" {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
	if !resp.Completed || resp.Stats == nil {
		t.Fatalf("expected completion with stats, got %+v", resp)
	}
	if !resp.Stats.Success {
		t.Error("expected success=true for a correct guess")
	}
	if resp.Stats.MessageCount != 1 {
		t.Errorf("expected message count 1, got %d", resp.Stats.MessageCount)
	}
}

func TestChatValidation(t *testing.T) {
	r := testRouter(t, setupDeps(t, &scriptedLLM{}))

	cases := []ChatRequest{
		{SessionID: "", Text: "질문"},
		{SessionID: "sess-1", Text: ""},
		{SessionID: "sess-1", Text: "   "},
	}
	for _, req := range cases {
		w := postChat(t, r, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %+v, got %d", req, w.Code)
		}
		var resp ErrorResponse
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Error != "sessionId and text are required" {
			t.Errorf("unexpected error message %q", resp.Error)
		}
	}
}

func TestChatUnknownQuiz(t *testing.T) {
	llm := &scriptedLLM{outputs: []string{`{"classification": "YESNO"}`}}
	r := testRouter(t, setupDeps(t, llm))

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-999", Text: "질문인가요?"})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestChatUnconfiguredReasoning(t *testing.T) {
	d := setupDeps(t, &scriptedLLM{})
	d.LLMConfigured = false
	r := testRouter(t, d)

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", Text: "질문인가요?"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Error != "OPENAI_API_KEY is not set" {
		t.Errorf("unexpected error message %q", resp.Error)
	}
}

func TestChatHintCommandSkipsReasoning(t *testing.T) {
	// No scripted outputs: any reasoning call would fail the request.
	d := setupDeps(t, &scriptedLLM{})
	d.LLMConfigured = false
	r := testRouter(t, d)

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "@힌트"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Command != "hint" {
		t.Errorf("expected hint command, got %q", resp.Command)
	}
	if !strings.HasPrefix(resp.Reply, "힌트: ") {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
}

func TestChatHintCommandExhausted(t *testing.T) {
	d := setupDeps(t, &scriptedLLM{})
	r := testRouter(t, d)

	q, err := d.Quizzes.Get(context.Background(), "toady-001")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}

	for i := 0; i < len(q.Hints); i++ {
		postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "@힌트"})
	}

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "@힌트"})
	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Reply != hintsCappedReply {
		t.Errorf("expected capped reply, got %q", resp.Reply)
	}
}

func TestChatGiveUpCommand(t *testing.T) {
	d := setupDeps(t, &scriptedLLM{})
	r := testRouter(t, d)

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "@포기"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Command != "give_up" || !resp.Completed {
		t.Errorf("unexpected response %+v", resp)
	}
	if !strings.HasPrefix(resp.Reply, giveUpReplyPrefix) || !strings.Contains(resp.Reply, "정답: ") {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
	if resp.Stats == nil || resp.Stats.Success {
		t.Errorf("giving up must record success=false, got %+v", resp.Stats)
	}
}

func TestChatGiveUpDoesNotOverwriteWin(t *testing.T) {
	llm := &scriptedLLM{outputs: []string{
		`{"classification": "GUESS"}`,
		`{"label": "CORRECT"}`,
	}}
	r := testRouter(t, setupDeps(t, llm))

	postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "드라이아이스 때문이에요"})

	w := postChat(t, r, ChatRequest{SessionID: "sess-1", QuizID: "toady-001", Text: "@포기"})
	var resp ChatResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Stats == nil || !resp.Stats.Success {
		t.Errorf("earlier win was overwritten: %+v", resp.Stats)
	}
}
