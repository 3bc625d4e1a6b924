package reasoning

import "testing"

func TestExtractJSONWholeDocument(t *testing.T) {
	var out struct {
		Label string `json:"label"`
	}
	if !ExtractJSON(`{"label": "YES_CORE"}`, &out) {
		t.Fatal("expected clean JSON to parse")
	}
	if out.Label != "YES_CORE" {
		t.Errorf("expected YES_CORE, got %q", out.Label)
	}
}

func TestExtractJSONProseWrapped(t *testing.T) {
	raw := "Sure! Here is the result:\n```json\n{\"classification\": \"YESNO\"}\n```\nHope that helps."

	var out struct {
		Classification string `json:"classification"`
	}
	if !ExtractJSON(raw, &out) {
		t.Fatal("expected brace-sliced JSON to parse")
	}
	if out.Classification != "YESNO" {
		t.Errorf("expected YESNO, got %q", out.Classification)
	}
}

func TestExtractJSONRepairsQuotesAndCommas(t *testing.T) {
	raw := `{'label': 'NO_CORE',}`

	var out struct {
		Label string `json:"label"`
	}
	if !ExtractJSON(raw, &out) {
		t.Fatal("expected repaired JSON to parse")
	}
	if out.Label != "NO_CORE" {
		t.Errorf("expected NO_CORE, got %q", out.Label)
	}
}

func TestExtractJSONTrailingCommaInArray(t *testing.T) {
	raw := `{"items": ["a", "b",]}`

	var out struct {
		Items []string `json:"items"`
	}
	if !ExtractJSON(raw, &out) {
		t.Fatal("expected trailing array comma to be repaired")
	}
	if len(out.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(out.Items))
	}
}

func TestExtractJSONNoBraces(t *testing.T) {
	var out struct{}
	if ExtractJSON("I cannot answer that.", &out) {
		t.Error("expected failure for output without braces")
	}
	if ExtractJSON("", &out) {
		t.Error("expected failure for empty output")
	}
}

func TestExtractJSONUnrecoverable(t *testing.T) {
	var out struct{}
	if ExtractJSON(`{totally broken`, &out) {
		t.Error("expected failure for unrecoverable fragment")
	}
}
