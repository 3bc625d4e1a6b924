package engine

import (
	"strings"
	"testing"
)

func TestYesNoReplyByPrefix(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{VerdictYesCore, "네, 정확히 핵심을 짚으셨어요! 👏"},
		{VerdictYesPeripheral, "네, 맞아요."},
		{VerdictYesInferred, "그렇게 생각할 수 있을 것 같아요."},
		{VerdictNoCore, "아니요, 하지만 아주 중요한 질문이었어요! 핵심적인 부분을 짚으셨네요."},
		{VerdictNoPeripheral, "아니요, 그건 아니에요."},
		{VerdictNoInferred, "아니요, 그렇지는 않을 것 같아요."},
		{VerdictUnknown, "그건 주어진 정보만으론 확실하다고 말하긴 어려워요."},
	}

	for _, tc := range cases {
		if got := yesNoReply(tc.label); got != tc.want {
			t.Errorf("yesNoReply(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}

	// Decorated labels still hit the right copy.
	if got := yesNoReply("YES_CORE!"); got != yesNoReply(VerdictYesCore) {
		t.Errorf("decorated label mapped to %q", got)
	}

	// Anything unrecognized reads as unrelated.
	if got := yesNoReply("GIBBERISH"); !strings.Contains(got, "관련이 없어요") {
		t.Errorf("unrecognized label mapped to %q", got)
	}
}

func TestExampleSelection(t *testing.T) {
	if got := formatExampleFor("어디에서 일어난 일인가요?"); !strings.Contains(got, "내용물") {
		t.Errorf("place keyword picked %q", got)
	}
	if got := formatExampleFor("원인이 뭐예요?"); !strings.Contains(got, "신고의 이유") {
		t.Errorf("cause keyword picked %q", got)
	}
	if got := formatExampleFor("흠"); got != genericFormatExample {
		t.Errorf("generic fallback picked %q", got)
	}
	if got := narrowExampleFor("흠"); got != genericNarrowExample {
		t.Errorf("narrow fallback picked %q", got)
	}
}

func TestCoachingAppendsExample(t *testing.T) {
	with := formatCoach("상자 안의 어떤 요소가 문제의 핵심인가요?")
	if !strings.Contains(with, " 예: ") {
		t.Errorf("expected example clause, got %q", with)
	}
	without := formatCoach("")
	if strings.Contains(without, "예: ") {
		t.Errorf("expected no example clause, got %q", without)
	}

	if !strings.Contains(ambiguousCoach("더 좁혀볼까요?"), " 예: ") {
		t.Error("ambiguity coaching should append the example clause")
	}
}
