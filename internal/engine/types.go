// Package engine turns one free-text player utterance into a reply: it
// classifies the utterance, routes it to the yes/no judge or the answer
// checker when needed, and composes the player-facing copy. It holds no
// cross-turn state; session state lives in the daily package and the
// transcript store.
package engine

// Intent is the classifier's output category for one utterance.
type Intent string

const (
	IntentYesNo         Intent = "YESNO"
	IntentGuess         Intent = "GUESS"
	IntentHintRequest   Intent = "HINT_REQUEST"
	IntentAnswerRequest Intent = "ANSWER_REQUEST"
	IntentIrrelevant    Intent = "IRRELEVANT"
	IntentInvalidFormat Intent = "INVALID_FORMAT"

	// IntentUnknown is reported when classification itself failed; the player
	// still gets a coaching reply, never an error.
	IntentUnknown Intent = "UNKNOWN"
)

// Yes/no verdict labels. Polarity (YES/NO/UNKNOWN/UNRELATED) crossed with
// relevance (CORE/PERIPHERAL/INFERRED) where polarity is decisive.
const (
	VerdictYesCore       = "YES_CORE"
	VerdictYesPeripheral = "YES_PERIPHERAL"
	VerdictYesInferred   = "YES_INFERRED"
	VerdictNoCore        = "NO_CORE"
	VerdictNoPeripheral  = "NO_PERIPHERAL"
	VerdictNoInferred    = "NO_INFERRED"
	VerdictUnknown       = "UNKNOWN"
	VerdictUnrelated     = "UNRELATED"
)

// Answer checker verdicts.
const (
	VerdictCorrect   = "CORRECT"
	VerdictIncorrect = "INCORRECT"
)

type Role string

const (
	RolePlayer   Role = "player"
	RoleNarrator Role = "narrator"
)

// Turn is one transcript entry. The orchestrator only ever reads a bounded
// suffix of these for reference resolution; it never rewrites them.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Result is the outcome of one handled utterance. Details carries the judge
// or checker label when one was produced.
type Result struct {
	Reply          string
	Classification Intent
	Details        string
}
