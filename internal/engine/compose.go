package engine

import (
	"regexp"
	"strings"
)

// All player-visible copy lives here. Replies are deterministic functions of
// (intent, verdict); nothing in this file may call the reasoning service.
const (
	hintDeflectReply   = "힌트는 상단의 노란색 버튼을 눌러서 요청할 수 있어요. 일단 예/아니오로 물어보면 더 빨라요!"
	answerDeflectReply = "정답은 상단의 빨간색 버튼을 눌러서 확인할 수 있어요. 예/아니오 질문으로 한 번 좁혀볼까요?"
	irrelevantReply    = "이야기 재밌지만, 지금은 퀴즈 집중! 예/아니오로 물어보면 진행이 빨라집니다."
)

// Example questions for format/ambiguity coaching, picked by keyword match on
// the utterance. A table rather than inline conditionals so the coaching text
// stays centrally auditable.
var exampleRules = []struct {
	pattern *regexp.Regexp
	example string
}{
	{regexp.MustCompile(`장소|어디`), "상자 안의 '내용물'과 관련이 있나요?"},
	{regexp.MustCompile(`이유|원인`), "신고의 이유가 '상자 내부의 상태' 때문인가요?"},
}

const (
	genericFormatExample = "상자 안의 어떤 요소가 문제의 핵심인가요?"
	genericNarrowExample = "질문 범위를 조금 더 좁혀볼까요?"
)

// formatExampleFor picks the example clause for format coaching.
func formatExampleFor(text string) string {
	for _, r := range exampleRules {
		if r.pattern.MatchString(text) {
			return r.example
		}
	}
	return genericFormatExample
}

// narrowExampleFor picks the example clause for ambiguity coaching. The
// generic fallback differs from the format one: an UNKNOWN verdict means the
// question was fine in shape but too broad.
func narrowExampleFor(text string) string {
	for _, r := range exampleRules {
		if r.pattern.MatchString(text) {
			return r.example
		}
	}
	return genericNarrowExample
}

func formatCoach(example string) string {
	reply := "예/아니오로 답할 수 있게 살짝 바꿔볼까요?"
	if example != "" {
		reply += " 예: " + example
	}
	return reply
}

func ambiguousCoach(example string) string {
	reply := "그렇게 볼 수도 있고, 아닐 수도 있어요. 더 정확해지려면 질문을 조금만 좁혀볼까요?"
	if example != "" {
		reply += " 예: " + example
	}
	return reply
}

// yesNoReply maps a judge label to its acknowledgment. Matching is by prefix:
// the label is model output that survived parsing, not a checked enum, and a
// decorated-but-recognizable label should still land on the right copy.
func yesNoReply(label string) string {
	switch {
	case strings.HasPrefix(label, VerdictYesCore):
		return "네, 정확히 핵심을 짚으셨어요! 👏"
	case strings.HasPrefix(label, VerdictYesPeripheral):
		return "네, 맞아요."
	case strings.HasPrefix(label, VerdictYesInferred):
		return "그렇게 생각할 수 있을 것 같아요."
	case strings.HasPrefix(label, VerdictNoCore):
		return "아니요, 하지만 아주 중요한 질문이었어요! 핵심적인 부분을 짚으셨네요."
	case strings.HasPrefix(label, VerdictNoPeripheral):
		return "아니요, 그건 아니에요."
	case strings.HasPrefix(label, VerdictNoInferred):
		return "아니요, 그렇지는 않을 것 같아요."
	case label == VerdictUnknown:
		return "그건 주어진 정보만으론 확실하다고 말하긴 어려워요."
	default:
		return "그 질문은 정답과는 관련이 없어요. 다른 각도로 가볼까요?"
	}
}

func guessReply(label string) string {
	if label == VerdictCorrect {
		return "정답입니다! 👏"
	}
	return "아쉽지만 정답은 아니에요. 조금만 더 좁혀가볼까요?"
}
