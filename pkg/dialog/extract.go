package dialog

import (
	"slices"
	"strings"
)

// Cue lists for the add-assignment extractor. Trailing spaces matter:
// the captured value starts right after the cue.
var (
	dueCues   = []string{"deadline ", "due ", "due date ", "by ", "on "}
	topicCues = []string{"topic ", "about ", "assignment ", "homework ", "project "}
	courseCue = []string{"for ", "course ", "class ", "subject "}

	datePhrases = []string{"next week", "this week", "tomorrow", "today"}
	dayNames    = []string{
		"monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday",
	}

	// A bare first word is not a course name if it is one of these.
	courseStopWords = []string{
		"topic", "about", "assignment", "homework",
		"deadline", "due", "by", "on", "the", "a", "an",
	}

	// Single words that mark an utterance as date-like for the
	// description fallback, matched on word boundaries.
	dateWords = []string{
		"deadline", "due", "by", "on", "tomorrow", "today",
		"monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday",
	}
)

// extractAssignment scans one utterance for assignment fields and fills
// any that are still missing in gathered. Users answering a follow-up
// question tend to give terse single-value answers, but sometimes
// front-load the whole assignment in one sentence ("physics topic
// acceleration deadline next week"); both must work without mistaking a
// date phrase for the course name.
//
// pending is the field the session is currently asking for; it gates
// the bare whole-utterance fallbacks.
func extractAssignment(text string, gathered map[string]string, pending string) {
	lower := strings.ToLower(text)
	trimmed := strings.TrimSpace(text)

	// Due date first: it usually trails the sentence after a cue word.
	if _, ok := gathered[FieldDueDate]; !ok {
		if v := afterFirstCue(text, lower, dueCues); v != "" {
			gathered[FieldDueDate] = v
		} else if p := firstContained(lower, datePhrases); p != "" {
			gathered[FieldDueDate] = p
		} else if d := firstContained(lower, dayNames); d != "" {
			gathered[FieldDueDate] = d
		}
	}

	// Description: text after a topic cue, with any trailing due-date
	// cue or date phrase cut off.
	if _, ok := gathered[FieldDescription]; !ok {
		for _, cue := range topicCues {
			idx := strings.Index(lower, cue)
			if idx < 0 {
				continue
			}
			part := strings.TrimSpace(text[idx+len(cue):])
			part = cutBefore(part, dueCues)
			part = cutBefore(part, datePhrases)
			part = cutBefore(part, dayNames)
			if part != "" {
				gathered[FieldDescription] = part
				break
			}
		}
	}

	// Course: the word after a course cue, else the utterance's first
	// word unless it is a stop word.
	if _, ok := gathered[FieldCourse]; !ok {
		if w := wordAfterCue(lower, courseCue); w != "" {
			gathered[FieldCourse] = titleWord(w)
		} else if fields := strings.Fields(lower); len(fields) > 0 &&
			!slices.Contains(courseStopWords, fields[0]) {
			gathered[FieldCourse] = titleWord(fields[0])
		}
	}

	// Bare fallbacks: the pending field accepts the whole utterance
	// verbatim when the scans above found nothing usable.
	switch pending {
	case FieldCourse:
		if _, ok := gathered[FieldCourse]; !ok && len(strings.Fields(trimmed)) <= 2 {
			gathered[FieldCourse] = titleWords(trimmed)
		}
	case FieldDescription:
		if _, ok := gathered[FieldDescription]; !ok && !looksDated(lower) {
			gathered[FieldDescription] = trimmed
		}
	case FieldDueDate:
		if _, ok := gathered[FieldDueDate]; !ok && trimmed != "" {
			gathered[FieldDueDate] = trimmed
		}
	}
}

// afterFirstCue returns the trimmed original-cased text following the
// first cue found, or "".
func afterFirstCue(text, lower string, cues []string) string {
	for _, cue := range cues {
		if idx := strings.Index(lower, cue); idx >= 0 {
			return strings.TrimSpace(text[idx+len(cue):])
		}
	}
	return ""
}

// wordAfterCue returns the first word following the first cue found.
func wordAfterCue(lower string, cues []string) string {
	for _, cue := range cues {
		_, after, ok := strings.Cut(lower, cue)
		if !ok {
			continue
		}
		if fields := strings.Fields(after); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// firstContained returns the first candidate appearing in s, or "".
func firstContained(s string, candidates []string) string {
	for _, c := range candidates {
		if strings.Contains(s, c) {
			return c
		}
	}
	return ""
}

// cutBefore truncates part at the first occurrence of any marker.
func cutBefore(part string, markers []string) string {
	lower := strings.ToLower(part)
	for _, m := range markers {
		if idx := strings.Index(lower, m); idx >= 0 {
			part = strings.TrimSpace(part[:idx])
			lower = strings.ToLower(part)
		}
	}
	return part
}

// looksDated reports whether the utterance contains a date-like word.
// Single keywords match on word boundaries so "on" does not hide inside
// "acceleration"; "next week" matches as a phrase.
func looksDated(lower string) bool {
	if strings.Contains(lower, "next week") {
		return true
	}
	for _, f := range strings.Fields(lower) {
		if slices.Contains(dateWords, f) {
			return true
		}
	}
	return false
}

// titleWord upper-cases the first letter of a single word.
func titleWord(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// titleWords title-cases every word ("comp sci" → "Comp Sci").
func titleWords(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, f := range fields {
		fields[i] = titleWord(f)
	}
	return strings.Join(fields, " ")
}
