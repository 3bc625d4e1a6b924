package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/toadygame/turtlesoup/internal/quiz"
	"github.com/toadygame/turtlesoup/internal/reasoning"
)

// historyLimit bounds the transcript suffix passed to the judge. Anything the
// caller sends beyond this is dropped before use, so verdicts depend only on
// the most recent suffix.
const historyLimit = 20

type Engine struct {
	llm    reasoning.Completer
	logger *slog.Logger
}

func New(llm reasoning.Completer, logger *slog.Logger) *Engine {
	return &Engine{llm: llm, logger: logger}
}

// Handle runs one utterance through the pipeline: classify, then judge or
// check when the intent calls for it, then compose the reply. At most two
// reasoning round trips; every reasoning failure degrades to deterministic
// coaching copy instead of an error.
func (e *Engine) Handle(ctx context.Context, q quiz.Quiz, text string, history []Turn) Result {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	intent, ok := e.classify(ctx, q, text)
	if !ok {
		return Result{
			Reply:          formatCoach(formatExampleFor(text)),
			Classification: IntentUnknown,
		}
	}

	switch intent {
	case IntentHintRequest:
		return Result{Reply: hintDeflectReply, Classification: intent}

	case IntentAnswerRequest:
		return Result{Reply: answerDeflectReply, Classification: intent}

	case IntentIrrelevant:
		return Result{Reply: irrelevantReply, Classification: intent}

	case IntentInvalidFormat:
		return Result{Reply: formatCoach(formatExampleFor(text)), Classification: intent}

	case IntentGuess:
		label := e.check(ctx, q, text)
		return Result{Reply: guessReply(label), Classification: intent, Details: label}

	case IntentYesNo:
		label := e.judge(ctx, q, text, history)
		if label == VerdictUnknown {
			return Result{
				Reply:          ambiguousCoach(narrowExampleFor(text)),
				Classification: intent,
				Details:        label,
			}
		}
		return Result{Reply: yesNoReply(label), Classification: intent, Details: label}

	default:
		// The classifier produced a category outside the contract. Coach the
		// format without an example, as for any malformed classification.
		return Result{Reply: formatCoach(""), Classification: intent}
	}
}

// classify maps the utterance to an intent. Deliberately stateless: history
// is excluded so classification depends only on the current utterance and
// quiz context. A failed or unparseable call is final — no retry.
func (e *Engine) classify(ctx context.Context, q quiz.Quiz, text string) (Intent, bool) {
	raw, err := e.llm.Complete(ctx, classifierInstructions(q), currentQuestion(text))
	if err != nil {
		e.logger.Warn("classifier call failed", "error", err)
		return IntentUnknown, false
	}

	var out struct {
		Classification string `json:"classification"`
	}
	if !reasoning.ExtractJSON(raw, &out) || out.Classification == "" {
		e.logger.Warn("classifier output unparseable", "raw", raw)
		return IntentUnknown, false
	}
	return Intent(out.Classification), true
}

// judge labels the utterance as a yes/no verdict. History is included only to
// resolve references like "it" or "that"; a failure collapses to UNKNOWN,
// which composes as ambiguity coaching.
func (e *Engine) judge(ctx context.Context, q quiz.Quiz, text string, history []Turn) string {
	var b strings.Builder
	if len(history) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, t := range history {
			role := "user"
			if t.Role == RoleNarrator {
				role = "assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, t.Content)
		}
	}
	b.WriteString(currentQuestion(text))

	raw, err := e.llm.Complete(ctx, judgeInstructions(q), b.String())
	if err != nil {
		e.logger.Warn("judge call failed", "error", err)
		return VerdictUnknown
	}

	var out struct {
		Label string `json:"label"`
	}
	if !reasoning.ExtractJSON(raw, &out) || out.Label == "" {
		e.logger.Warn("judge output unparseable", "raw", raw)
		return VerdictUnknown
	}
	return out.Label
}

// check grades a solution attempt against the checkpoints. Only the guess
// text goes in — grading must not depend on how many turns preceded it. A
// failure collapses to INCORRECT, the conservative verdict.
func (e *Engine) check(ctx context.Context, q quiz.Quiz, text string) string {
	input, _ := json.Marshal(map[string]string{"guess": text})

	raw, err := e.llm.Complete(ctx, checkerInstructions(q), string(input))
	if err != nil {
		e.logger.Warn("checker call failed", "error", err)
		return VerdictIncorrect
	}

	var out struct {
		Label string `json:"label"`
	}
	if !reasoning.ExtractJSON(raw, &out) || out.Label == "" {
		e.logger.Warn("checker output unparseable", "raw", raw)
		return VerdictIncorrect
	}
	return out.Label
}

func currentQuestion(text string) string {
	return fmt.Sprintf(`Current question: """%s"""`, text)
}
