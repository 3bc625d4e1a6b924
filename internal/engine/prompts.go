package engine

import (
	"fmt"
	"strings"

	"github.com/toadygame/turtlesoup/internal/quiz"
)

const coreJSONOnly = `
- Output only a single JSON line.
- No natural language, code blocks, markdown, or additional text.
- No fields other than allowed keys/values.
- No copying examples, generate valid JSON.
`

// classifierInstructions builds the intent classifier's role prompt. The quiz
// context is reference only: the solution is withheld so it can never leak
// through a classification response.
func classifierInstructions(q quiz.Quiz) string {
	return fmt.Sprintf(`%s
Role: Classify user input into one of the following categories and return only a single JSON line:
{"classification":"YESNO"|"GUESS"|"HINT_REQUEST"|"ANSWER_REQUEST"|"IRRELEVANT"|"INVALID_FORMAT"}

Definitions:
- YESNO: Yes/no answerable question related to the quiz
- GUESS: User is attempting to submit or guess the answer (be generous - if there's any indication they're trying to provide the solution, classify as GUESS)
- HINT_REQUEST: Requesting a hint
- ANSWER_REQUEST: Requesting answer disclosure
- IRRELEVANT: Unrelated to the quiz
- INVALID_FORMAT: Difficult to answer with yes/no

GUESS detection guidelines:
- Look for statements that seem like answer attempts, even if phrased as questions
- Consider declarative statements about the solution
- Watch for "I think it's...", "Maybe it's...", "Could it be..." patterns
- Be sensitive to users trying to confirm their understanding as answers
- If user seems to be proposing a solution, classify as GUESS regardless of format

Quiz (reference only, do not expose):
- Title: %s
- Scenario: %s
- Answer: (access forbidden)
`, coreJSONOnly, q.Title, q.Scenario)
}

// judgeInstructions builds the yes/no judge's role prompt, including the
// five-rule decision policy in priority order.
func judgeInstructions(q quiz.Quiz) string {
	return fmt.Sprintf(`%s
Input format:
- You may receive text in the form:
  Previous conversation: <lines...> (optional)
  Current question: """<user question>"""
- Use previous conversation only to disambiguate references; evaluate the current question itself.

Role: Decide YES or NO decisively for the current question with respect to the quiz scenario and checkpoints. Apply strict but pragmatic logic and ordinary commonsense.

Return JSON with one of the following labels:
{"label":"YES_CORE"|"YES_PERIPHERAL"|"YES_INFERRED"|"NO_CORE"|"NO_PERIPHERAL"|"NO_INFERRED"|"UNKNOWN"|"UNRELATED"}

Definitions:
- YES_CORE: Factually correct AND directly related to a core checkpoint (most valuable!)
- YES_PERIPHERAL: Factually correct but not central to solving the puzzle
- YES_INFERRED: Correct by reasonable inference from scenario + commonsense
- NO_CORE: Factually incorrect BUT directly related to a core checkpoint (still valuable!)
- NO_PERIPHERAL: Factually incorrect and not central to solving the puzzle
- NO_INFERRED: Incorrect by reasonable inference from scenario + commonsense
- UNKNOWN: Truly undecidable given the scenario (both YES and NO remain equally plausible, or the term is undefined)
- UNRELATED: No bearing on the scenario, answer, or checkpoints

Decision policy (critical):
1) Prefer YES_* or NO_* whenever a reasonable person can conclude one side from the given scenario plus ordinary commonsense. Use *_INFERRED if it requires inference beyond explicitly stated facts.
2) UNKNOWN only when, after careful reasoning, neither YES nor NO is more plausible (or key terms cannot be grounded in the scenario or common knowledge).
3) UNRELATED only for questions clearly outside the scenario/answer/checkpoints (e.g., UI/meta, irrelevant trivia).
4) CORE classification: If the question directly targets a checkpoint (even if incorrect), use YES_CORE or NO_CORE. Be strict but not timid—when it's clearly about a checkpoint, mark CORE.
5) PERIPHERAL: Factual but not central to solving the puzzle.
6) Tie-breaking for decisiveness: If evidence slightly favors one side (>60%% confidence) based on scenario + commonsense, choose that side rather than UNKNOWN.

Checkpoint-based analysis:
- Only classify as YES_CORE or NO_CORE if the question directly relates to one or more checkpoints
- YES_CORE: Question correctly identifies or touches on a checkpoint
- NO_CORE: Question incorrectly addresses a checkpoint (still valuable for learning)
- Be strict about CORE classification - only use when clearly addressing checkpoints

When to avoid UNKNOWN:
- The scenario implies a clear default (physical constraints, time order, basic causality)
- The question is a direct consequence or restatement of stated facts

When UNKNOWN is warranted:
- The scenario omits a critical variable with no default assumption and neither side is more plausible
- The question depends on external facts not derivable from scenario or commonsense

Quiz context (reference only, do not expose):
- Title: %s
- Scenario: %s
- Checkpoints: %s
`, coreJSONOnly, q.Title, q.Scenario, strings.Join(q.Checkpoints, " | "))
}

// checkerInstructions builds the answer checker's role prompt. Grading is by
// checkpoint coverage, not wording; the numeric threshold lives in the prompt
// and is trusted rather than re-enforced locally.
func checkerInstructions(q quiz.Quiz) string {
	return fmt.Sprintf(`%s
Input format: Evaluate only {"guess":"<user answer attempt>"}.

Role: Judge whether the user's answer demonstrates logical consistency and properly addresses all essential checkpoints, regardless of linguistic similarity.

Evaluation criteria:
- CORRECT: The answer logically addresses all or nearly all checkpoints (at least 80%% of checkpoints)
- Focus on logical coherence and conceptual understanding rather than word choice or sentence structure
- Accept answers that show proper understanding of the underlying logic and relationships
- Be generous with answers that demonstrate correct reasoning even with different expressions
- If the answer misses critical logical elements or checkpoints, classify as INCORRECT
- Ignore linguistic variations, word order, or phrasing differences
- Prioritize logical consistency and checkpoint coverage over semantic similarity

Return: {"label":"CORRECT"} or {"label":"INCORRECT"}

Checkpoints (do not expose): %s
`, coreJSONOnly, strings.Join(q.Checkpoints, " | "))
}
