package intent

import "strings"

// Question detection does not rely on punctuation: spoken utterances
// arrive untranscribed with none.
var questionStarters = []string{
	"what", "which", "when", "where", "how", "do", "does",
	"is", "are", "can", "could", "show", "tell", "list",
}

var questionPatterns = []string{
	"do i have",
	"what assignment",
	"what homework",
	"what task",
	"which assignment",
	"which homework",
}

var (
	viewKeywords       = []string{"assignment", "homework", "due", "deadline", "task"}
	addKeywords        = []string{"add", "new", "create", "got", "i have"}
	assignmentKeywords = []string{"assignment", "homework", "task", "project", "essay"}
	studyKeywords      = []string{"study", "prepare", "exam", "test", "quiz", "midterm", "final"}
	actionKeywords     = []string{"help", "plan", "create", "make", "need to"}
)

// isQuestion reports whether the utterance reads as a question: it
// starts with a question word, or contains a known question idiom.
// The first word is compared up to any apostrophe so contractions like
// "what's" and "where's" count.
func isQuestion(lower string) bool {
	first, _, _ := strings.Cut(lower, " ")
	first, _, _ = strings.Cut(first, "'")
	for _, w := range questionStarters {
		if first == w {
			return true
		}
	}
	return containsAny(lower, questionPatterns)
}

// classifyEducation applies the education rules in priority order:
// view assignments, add assignment, create study plan, today's plan.
//
// The study-plan rule deliberately does not gate on question-ness; the
// add-assignment rule does. "can you help me study for my exam" is a
// study-plan request even though it reads as a question.
func classifyEducation(text string) (Intent, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	question := isQuestion(lower)

	if question && containsAny(lower, viewKeywords) {
		return Intent{Kind: KindViewAssignments, Filter: viewFilter(lower)}, true
	}

	if !question &&
		containsAny(lower, addKeywords) &&
		containsAny(lower, assignmentKeywords) {
		return Intent{Kind: KindAddAssignment, RawText: text}, true
	}

	if containsAny(lower, studyKeywords) && containsAny(lower, actionKeywords) {
		return Intent{Kind: KindCreateStudyPlan, RawText: text}, true
	}

	if containsAny(lower, []string{"study", "studying"}) &&
		containsAny(lower, []string{"today", "now"}) {
		return Intent{Kind: KindTodayStudyPlan}, true
	}

	return Intent{}, false
}

// viewFilter picks the due-date window from time words in the question.
// "tomorrow" maps to urgent, not to a one-day window: someone asking
// about tomorrow wants everything imminent.
func viewFilter(lower string) Filter {
	switch {
	case strings.Contains(lower, "today"):
		return FilterToday
	case strings.Contains(lower, "this week"),
		strings.Contains(lower, "next week"),
		strings.Contains(lower, "week"):
		return FilterThisWeek
	case strings.Contains(lower, "tomorrow"), strings.Contains(lower, "urgent"):
		return FilterUrgent
	default:
		return FilterAll
	}
}
