// Package intent classifies free-text utterances into typed intents by
// keyword and phrase matching.
//
// Classification is order-defined, not grammar-defined: education rules
// run before system rules, and inside each group the first satisfied
// rule wins. Changing the order changes behavior.
package intent

import (
	"strings"
)

// Kind identifies the classified purpose of an utterance.
type Kind int

const (
	KindNone Kind = iota

	// Education intents. Always checked before system intents.
	KindViewAssignments
	KindAddAssignment
	KindCreateStudyPlan
	KindTodayStudyPlan

	// System intents.
	KindDiagnostics
	KindFocusStart
	KindFocusStop
	KindFocusPause
	KindFocusResume
	KindFocusExtend
	KindMusicPlay
	KindMusicStop
	KindSearch
)

// String returns the wire name of the kind, matching the command types
// the chat front end consumes.
func (k Kind) String() string {
	switch k {
	case KindViewAssignments:
		return "view_assignments"
	case KindAddAssignment:
		return "add_assignment_prompt"
	case KindCreateStudyPlan:
		return "create_study_plan_prompt"
	case KindTodayStudyPlan:
		return "today_study_plan"
	case KindDiagnostics:
		return "diagnostics"
	case KindFocusStart:
		return "focus_mode_start"
	case KindFocusStop:
		return "focus_mode_stop"
	case KindFocusPause:
		return "focus_mode_pause"
	case KindFocusResume:
		return "focus_mode_resume"
	case KindFocusExtend:
		return "focus_mode_extend"
	case KindMusicPlay:
		return "music_play"
	case KindMusicStop:
		return "music_stop"
	case KindSearch:
		return "search"
	default:
		return "none"
	}
}

// Filter narrows an assignment listing by due-date window.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterToday    Filter = "today"
	FilterThisWeek Filter = "this_week"
	FilterUrgent   Filter = "urgent"
)

// Intent is a classified utterance. Immutable once produced; only the
// fields relevant to Kind are populated.
type Intent struct {
	Kind Kind

	// Filter is set for KindViewAssignments.
	Filter Filter

	// RawText carries the original utterance for prompt intents that
	// seed a follow-up dialogue.
	RawText string

	// Minutes is the duration for KindFocusStart / KindFocusExtend.
	Minutes int

	// File is the selected track for KindMusicPlay.
	File string

	// Query is the extracted search text for KindSearch.
	Query string
}

// Config carries the tunable classification parameters: focus-timer
// durations and the music keyword-to-file mapping. The phrase tables
// themselves are fixed.
type Config struct {
	// FocusMinutes is the session length when none is spoken.
	FocusMinutes int

	// ExtendMinutes is the extension when none is spoken.
	ExtendMinutes int

	// MusicFiles maps spoken keywords to audio files. Keywords are
	// checked in sorted order; first match wins.
	MusicFiles map[string]string

	// DefaultMusic is played when no keyword matches.
	DefaultMusic string
}

// DefaultConfig returns the stock classification parameters.
func DefaultConfig() Config {
	return Config{
		FocusMinutes:  DefaultFocusMinutes,
		ExtendMinutes: DefaultExtendMinutes,
		MusicFiles: map[string]string{
			"oppenheimer": "oppenheimer.mp3",
			"cornfield":   DefaultMusicFile,
		},
		DefaultMusic: DefaultMusicFile,
	}
}

// Classify scans an utterance and returns its intent, using the stock
// parameters. Pure function: case-insensitive substring and prefix
// matching, no external state.
func Classify(text string) Intent {
	return ClassifyWith(text, DefaultConfig())
}

// ClassifyWith is Classify with caller-supplied parameters.
func ClassifyWith(text string, cfg Config) Intent {
	if it, ok := classifyEducation(text); ok {
		return it
	}
	if it, ok := classifySystem(text, cfg); ok {
		return it
	}
	return Intent{Kind: KindNone}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// firstInt returns the first run of digits in s as an integer.
func firstInt(s string) (int, bool) {
	n, in := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			in = true
			continue
		}
		if in {
			break
		}
	}
	return n, in
}
