package intent

import (
	"sort"
	"strings"
)

var diagnosticsPhrases = []string{
	"system diagnostics",
	"system diagnostic",
	"run diagnostics",
	"system status",
	"system check",
	"check system",
	"system report",
	"system info",
	"system information",
}

var (
	focusStartPhrases = []string{
		"turn on focus mode", "start focus mode", "enable focus mode",
		"activate focus mode", "begin focus mode", "start focus",
		"turn on focus", "enable focus", "start study timer",
	}
	focusStopPhrases = []string{
		"turn off focus mode", "stop focus mode", "disable focus mode",
		"deactivate focus mode", "end focus mode", "stop focus",
		"turn off focus", "disable focus", "stop study timer",
	}
	focusPausePhrases = []string{
		"pause focus mode", "pause focus", "pause timer",
		"pause study timer",
	}
	focusResumePhrases = []string{
		"resume focus mode", "resume focus", "resume timer",
		"resume study timer", "continue focus mode",
	}
	focusExtendPhrases = []string{
		"extend focus mode", "extend focus", "extend timer",
		"add time", "extend study timer",
	}
)

var (
	musicPlayPhrases = []string{
		"play music", "play the music", "start music", "play song",
	}
	musicStopPhrases = []string{
		"stop music", "stop the music", "pause music", "stop song",
	}
)

// DefaultMusicFile is played when no track keyword is recognized.
const DefaultMusicFile = "cornfieldchase.mp3"

// searchTriggers are checked in order; the query is everything after
// the first trigger found. "search for " must precede "search " or the
// query would start with "for".
var searchTriggers = []string{
	"search for ",
	"search ",
	"google ",
	"look up ",
	"find information about ",
	"search the web for ",
}

// trailing filler words stripped from the end of a search query.
var searchFillers = []string{" please", " for me", " now"}

const (
	// DefaultFocusMinutes is one Pomodoro.
	DefaultFocusMinutes = 25

	// DefaultExtendMinutes is added when no duration is given.
	DefaultExtendMinutes = 15
)

// classifySystem applies the system rules in priority order:
// diagnostics, focus mode, music, web search.
func classifySystem(text string, cfg Config) (Intent, bool) {
	lower := strings.ToLower(text)

	if containsAny(lower, diagnosticsPhrases) {
		return Intent{Kind: KindDiagnostics}, true
	}

	switch {
	case containsAny(lower, focusStartPhrases):
		return Intent{Kind: KindFocusStart, Minutes: duration(lower, cfg.FocusMinutes)}, true
	case containsAny(lower, focusStopPhrases):
		return Intent{Kind: KindFocusStop}, true
	case containsAny(lower, focusPausePhrases):
		return Intent{Kind: KindFocusPause}, true
	case containsAny(lower, focusResumePhrases):
		return Intent{Kind: KindFocusResume}, true
	case containsAny(lower, focusExtendPhrases):
		return Intent{Kind: KindFocusExtend, Minutes: duration(lower, cfg.ExtendMinutes)}, true
	}

	if containsAny(lower, musicPlayPhrases) {
		return Intent{Kind: KindMusicPlay, File: pickMusic(lower, cfg)}, true
	}
	if containsAny(lower, musicStopPhrases) {
		return Intent{Kind: KindMusicStop}, true
	}

	for _, trigger := range searchTriggers {
		idx := strings.Index(lower, trigger)
		if idx < 0 {
			continue
		}
		// Slice the original text so the query keeps its casing.
		query := strings.TrimSpace(text[idx+len(trigger):])
		for _, filler := range searchFillers {
			if strings.HasSuffix(strings.ToLower(query), filler) {
				query = strings.TrimSpace(query[:len(query)-len(filler)])
			}
		}
		if query != "" {
			return Intent{Kind: KindSearch, Query: query}, true
		}
	}

	return Intent{}, false
}

// pickMusic maps the utterance to an audio file via the configured
// keywords, checked in sorted order for determinism.
func pickMusic(lower string, cfg Config) string {
	keywords := make([]string, 0, len(cfg.MusicFiles))
	for k := range cfg.MusicFiles {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return cfg.MusicFiles[k]
		}
	}
	if cfg.DefaultMusic != "" {
		return cfg.DefaultMusic
	}
	return DefaultMusicFile
}

// duration extracts a focus duration in minutes: the first integer in
// the text, scaled to minutes if an hour unit appears, else def.
func duration(lower string, def int) int {
	n, ok := firstInt(lower)
	if !ok {
		return def
	}
	if strings.Contains(lower, "hour") || strings.Contains(lower, "hr") {
		return n * 60
	}
	return n
}
