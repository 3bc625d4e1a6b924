package engine

import "strings"

// Command is a UI control token, distinct from the classifier's intents.
// Commands are recognized before any classification runs, so they never reach
// the reasoning service and never overlap with intent dispatch.
type Command int

const (
	CommandNone Command = iota
	CommandHint
	CommandReveal
	CommandGiveUp
)

// ParseCommand recognizes the "@"-prefixed control tokens.
func ParseCommand(text string) (Command, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "@") {
		return CommandNone, false
	}
	switch {
	case strings.HasPrefix(trimmed, "@힌트"):
		return CommandHint, true
	case strings.HasPrefix(trimmed, "@정답"):
		return CommandReveal, true
	case strings.HasPrefix(trimmed, "@포기"):
		return CommandGiveUp, true
	}
	return CommandNone, false
}
