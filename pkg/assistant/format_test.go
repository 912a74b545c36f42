package assistant_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/assistant"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/education"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/kv"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 11+offset, 23, 59, 59, 0, time.UTC)
}

func TestFormatAssignmentsSpeech(t *testing.T) {
	now := ref

	if got := assistant.FormatAssignmentsSpeech(nil, now); got != "You have no upcoming assignments. Well done!" {
		t.Errorf("empty = %q", got)
	}

	list := []education.Assignment{
		{Course: "Math", DueDate: day(0)},
		{Course: "Physics", DueDate: day(1)},
		{Course: "History", DueDate: day(-2)},
	}
	got := assistant.FormatAssignmentsSpeech(list, now)
	want := "You have 3 assignments: Math, today, Physics, tomorrow, History, overdue."
	if got != want {
		t.Errorf("speech = %q, want %q", got, want)
	}
}

func TestFormatAssignmentsSpeechTruncates(t *testing.T) {
	var list []education.Assignment
	for i := 0; i < 8; i++ {
		list = append(list, education.Assignment{Course: "C", DueDate: day(4)})
	}
	got := assistant.FormatAssignmentsSpeech(list, ref)
	if !strings.HasPrefix(got, "You have 8 assignments: ") {
		t.Errorf("speech = %q", got)
	}
	if !strings.HasSuffix(got, "and 3 more.") {
		t.Errorf("speech = %q", got)
	}
}

func TestFormatTodaySpeech(t *testing.T) {
	tasks := []education.TodayTask{
		{Subject: "Biology", Topic: "Cells", Hours: 2},
		{Subject: "Math", Topic: "Integrals", Hours: 1.5},
	}
	got := assistant.FormatTodaySpeech(tasks)
	want := "Today you should study: 2 hours of Cells for Biology, and 1.5 hours of Integrals for Math"
	if got != want {
		t.Errorf("speech = %q, want %q", got, want)
	}
}

func TestFormatDiagnosticsSpeech(t *testing.T) {
	d := &assistant.Diagnostics{
		BatteryPercent: "82%",
		BatteryStatus:  "charging",
		CPUUsage:       "13%",
		RAMPercent:     41.7,
	}
	got := assistant.FormatDiagnosticsSpeech(d)
	want := "Battery is at 82%, charging. CPU usage is 13%. RAM usage is at 42%."
	if got != want {
		t.Errorf("speech = %q, want %q", got, want)
	}

	// Desktop hosts have no battery.
	d.BatteryPercent = ""
	if got := assistant.FormatDiagnosticsSpeech(d); strings.Contains(got, "Battery") {
		t.Errorf("speech mentions battery: %q", got)
	}
}

func TestBuildDailyBrief(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	t.Cleanup(func() { store.Close() })
	now := ref
	edu := education.NewService(store, education.WithClock(func() time.Time { return now }))

	for _, tc := range []struct{ course, due string }{
		{"Math", "tomorrow"},
		{"Math", "next week"},
		{"Physics", "friday"},
	} {
		if _, _, err := edu.AddAssignment(ctx, tc.course, "work", tc.due); err != nil {
			t.Fatalf("AddAssignment: %v", err)
		}
	}
	if _, _, err := edu.CreatePlan(ctx, "Biology", "next week", 2, []string{"Cells"}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}

	// Move to the plan's first study day.
	now = ref.AddDate(0, 0, 1)

	brief, err := assistant.BuildDailyBrief(ctx, edu)
	if err != nil {
		t.Fatalf("BuildDailyBrief: %v", err)
	}
	if brief.Classes != 2 {
		t.Errorf("Classes = %d, want 2", brief.Classes)
	}
	// Tomorrow's and Friday's work are inside the 3-day window.
	if brief.DueSoon != 2 {
		t.Errorf("DueSoon = %d, want 2", brief.DueSoon)
	}
	if brief.StudyHours != 2 {
		t.Errorf("StudyHours = %g, want 2", brief.StudyHours)
	}
}
