// Package dates resolves natural-language date expressions ("tomorrow",
// "friday", "next week", "12/25") into absolute calendar dates.
//
// Every resolved date is normalized to the end of that calendar day
// (23:59:59) in the reference time's location, so a deadline "friday"
// means any time on Friday.
package dates

import (
	"errors"
	"strings"
	"time"
)

// ErrUnresolved is returned when the input text is not a recognizable
// date expression. Callers recover by asking the user to rephrase.
var ErrUnresolved = errors.New("dates: unresolved date expression")

// weekdays maps weekday names and their 3-letter abbreviations to
// time.Weekday. Full names are listed before abbreviations so that
// "saturday" is never shadowed by "sat" in a longer sentence.
var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
	{"mon", time.Monday},
	{"tue", time.Tuesday},
	{"wed", time.Wednesday},
	{"thu", time.Thursday},
	{"fri", time.Friday},
	{"sat", time.Saturday},
	{"sun", time.Sunday},
}

// calendarLayouts are tried in order for strict numeric parsing.
// US slash is tried before EU slash, so "13/05" (13 is not a valid US
// month) falls through to the EU layout. Layouts without a year get the
// reference year substituted.
var calendarLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"01/02",
	"02/01",
}

// Resolve converts a natural-language date expression into an absolute
// timestamp at 23:59:59 of the resolved calendar day.
//
// Matching order, first match wins:
//
//  1. "today" / "tonight" (exact) → reference day
//  2. "tomorrow" (exact) → reference day + 1
//  3. "next week" (substring) → reference day + 7
//  4. weekday name (substring) → next occurrence strictly after today
//  5. calendar formats (ISO, US slash, EU slash, month/day without year)
//
// Relative phrases are matched before numeric parsing: free text rarely
// carries an ambiguous numeric date, but often embeds a weekday name in
// a longer sentence.
func Resolve(text string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	today := EndOfDay(now)

	switch s {
	case "today", "tonight":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if strings.Contains(s, "next week") {
		return today.AddDate(0, 0, 7), nil
	}

	for _, wd := range weekdays {
		if !strings.Contains(s, wd.name) {
			continue
		}
		ahead := (int(wd.day) - int(now.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7 // always a future date, never today
		}
		return today.AddDate(0, 0, ahead), nil
	}

	for _, layout := range calendarLayouts {
		parsed, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		year := parsed.Year()
		if year == 0 {
			year = now.Year()
		}
		return time.Date(year, parsed.Month(), parsed.Day(),
			23, 59, 59, 0, now.Location()), nil
	}

	return time.Time{}, ErrUnresolved
}

// EndOfDay returns t's calendar day at 23:59:59.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// StartOfDay returns t's calendar day at midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysUntil returns the number of whole days from now until t, flooring
// toward negative infinity so that any instant earlier today or before
// counts as a past day.
func DaysUntil(t, now time.Time) int {
	d := t.Sub(now)
	days := int(d.Hours() / 24)
	if d < 0 && time.Duration(days)*24*time.Hour != d {
		days--
	}
	return days
}
