package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/assistant"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/education"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/intent"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/kv"
)

// Wednesday afternoon.
var ref = time.Date(2026, 3, 11, 14, 30, 0, 0, time.UTC)

type stubChat struct {
	reply string
	err   error
	calls [][]assistant.ChatMessage
}

func (c *stubChat) Reply(_ context.Context, history []assistant.ChatMessage) (string, error) {
	c.calls = append(c.calls, append([]assistant.ChatMessage(nil), history...))
	return c.reply, c.err
}

type stubSearcher struct{ queries []string }

func (s *stubSearcher) Search(_ context.Context, q string) error {
	s.queries = append(s.queries, q)
	return nil
}

func newTestAssistant(t *testing.T, opts ...assistant.AssistantOption) *assistant.Assistant {
	t.Helper()
	store := kv.NewMemory()
	t.Cleanup(func() { store.Close() })
	edu := education.NewService(store, education.WithClock(func() time.Time { return ref }))
	return assistant.New(edu, opts...)
}

func TestAddAssignmentConversation(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	resp, err := a.HandleMessage(ctx, "s1", "I have a new assignment")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "I'll help you add that assignment. What course is it for?"; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
	if !resp.ConversationActive || resp.WaitingFor != "course" {
		t.Fatalf("resp = %+v", resp)
	}

	// One dense reply fills every remaining field.
	resp, err = a.HandleMessage(ctx, "s1", "physics topic acceleration deadline next week")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if resp.ConversationActive {
		t.Fatalf("conversation still active: %+v", resp)
	}
	if resp.Command != assistant.CommandAddAssignmentComplete {
		t.Errorf("Command = %q", resp.Command)
	}
	if want := "Added Physics assignment due in 7 days."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}

	list, err := a.Education().Assignments(ctx, education.FilterAll)
	if err != nil {
		t.Fatalf("Assignments: %v", err)
	}
	if len(list) != 1 || list[0].Course != "Physics" || list[0].Description != "acceleration" {
		t.Errorf("stored assignment = %+v", list)
	}
}

func TestAddAssignmentTurnByTurn(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	turns := []struct{ say, wantQuestion string }{
		{"add homework", "I'll help you add that assignment. What course is it for?"},
		{"math", "What's the assignment about?"},
		{"integrals", "When is it due?"},
	}
	for _, turn := range turns {
		resp, err := a.HandleMessage(ctx, "s1", turn.say)
		if err != nil {
			t.Fatalf("HandleMessage(%q): %v", turn.say, err)
		}
		if resp.Text != turn.wantQuestion {
			t.Fatalf("after %q got %q, want %q", turn.say, resp.Text, turn.wantQuestion)
		}
	}

	resp, err := a.HandleMessage(ctx, "s1", "friday")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "Added Math assignment due in 2 days."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
}

func TestAddAssignmentBadDateApologizes(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	for _, say := range []string{"add homework", "math", "integrals"} {
		if _, err := a.HandleMessage(ctx, "s1", say); err != nil {
			t.Fatalf("HandleMessage(%q): %v", say, err)
		}
	}
	resp, err := a.HandleMessage(ctx, "s1", "whenever")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.HasPrefix(resp.Text, "Sorry, I couldn't understand that date.") {
		t.Errorf("Text = %q", resp.Text)
	}
}

func TestStudyPlanConversation(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	resp, err := a.HandleMessage(ctx, "s1", "help me study for my exam")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "I'll create a study plan for you. What subject is the exam on?"; resp.Text != want {
		t.Fatalf("Text = %q, want %q", resp.Text, want)
	}

	for _, say := range []string{"Biology", "next week"} {
		if resp, err = a.HandleMessage(ctx, "s1", say); err != nil {
			t.Fatalf("HandleMessage(%q): %v", say, err)
		}
	}
	if resp.Text != "How many hours per day can you study?" {
		t.Fatalf("Text = %q", resp.Text)
	}

	resp, err = a.HandleMessage(ctx, "s1", "2 hours")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	want := "Study plan created for Biology. You have 7 days to prepare, studying 2 hours per day. Let's start with Topic 1."
	if resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
	if resp.Display == "" {
		t.Error("plan display missing")
	}

	plans, err := a.Education().Plans(ctx)
	if err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if len(plans) != 1 || plans[0].HoursPerDay != 2 {
		t.Errorf("plans = %+v", plans)
	}
}

func TestViewAssignments(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	if _, _, err := a.Education().AddAssignment(ctx, "Math", "integrals", "friday"); err != nil {
		t.Fatalf("AddAssignment: %v", err)
	}

	resp, err := a.HandleMessage(ctx, "s1", "what's due this week")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if resp.Command != "view_assignments" {
		t.Errorf("Command = %q", resp.Command)
	}
	if want := "You have 1 assignments: Math, in 2 days."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
	if resp.Display == "" {
		t.Error("display missing")
	}
}

func TestTodayStudyPlanEmpty(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	resp, err := a.HandleMessage(ctx, "s1", "what should i study today")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "You have no study sessions planned for today."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
}

func TestFocusFlow(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	resp, err := a.HandleMessage(ctx, "s1", "start focus mode for 30 minutes")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "Focus mode started for 30 minutes."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}

	resp, _ = a.HandleMessage(ctx, "s1", "start focus mode")
	if want := "Focus mode is already running."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}

	resp, _ = a.HandleMessage(ctx, "s1", "pause focus mode")
	if resp.Text != "Focus mode paused." {
		t.Errorf("Text = %q", resp.Text)
	}
	resp, _ = a.HandleMessage(ctx, "s1", "resume focus mode")
	if !strings.HasPrefix(resp.Text, "Focus mode resumed.") {
		t.Errorf("Text = %q", resp.Text)
	}
	resp, _ = a.HandleMessage(ctx, "s1", "stop focus mode")
	if !strings.HasPrefix(resp.Text, "Focus mode stopped") {
		t.Errorf("Text = %q", resp.Text)
	}
	resp, _ = a.HandleMessage(ctx, "s1", "stop focus mode")
	if resp.Text != "Focus mode isn't running." {
		t.Errorf("Text = %q", resp.Text)
	}
}

func TestFocusZeroMinutesRejected(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	resp, err := a.HandleMessage(ctx, "s1", "start focus mode for 0 minutes")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "I need a positive number of minutes for focus mode."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}

	// The failed start leaves the timer idle.
	resp, _ = a.HandleMessage(ctx, "s1", "start focus mode for 30 minutes")
	if want := "Focus mode started for 30 minutes."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}

	resp, _ = a.HandleMessage(ctx, "s1", "extend timer by 0 minutes")
	if want := "I need a positive number of minutes to add."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
}

func TestClassifierConfigOption(t *testing.T) {
	ctx := context.Background()
	cfg := intent.DefaultConfig()
	cfg.FocusMinutes = 50
	a := newTestAssistant(t, assistant.WithClassifier(cfg))

	resp, err := a.HandleMessage(ctx, "s1", "start focus mode")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "Focus mode started for 50 minutes."; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
}

func TestSearchDispatch(t *testing.T) {
	ctx := context.Background()
	search := &stubSearcher{}
	a := newTestAssistant(t, assistant.WithSearcher(search))

	resp, err := a.HandleMessage(ctx, "s1", "search for Quantum Entanglement please")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if want := "Searching for Quantum Entanglement"; resp.Text != want {
		t.Errorf("Text = %q, want %q", resp.Text, want)
	}
	if len(search.queries) != 1 || search.queries[0] != "Quantum Entanglement" {
		t.Errorf("queries = %v", search.queries)
	}
}

func TestChatFallback(t *testing.T) {
	ctx := context.Background()
	chat := &stubChat{reply: "Good afternoon, Sir."}
	a := newTestAssistant(t, assistant.WithChatModel(chat))

	resp, err := a.HandleMessage(ctx, "s1", "hello there")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if resp.Command != assistant.CommandChat || resp.Text != "Good afternoon, Sir." {
		t.Errorf("resp = %+v", resp)
	}

	// The next turn carries the full history.
	if _, err := a.HandleMessage(ctx, "s1", "how are you"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	last := chat.calls[len(chat.calls)-1]
	if len(last) != 3 || last[0].Content != "hello there" || last[1].Role != "assistant" {
		t.Errorf("history = %+v", last)
	}
}

func TestChatUnavailable(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	resp, err := a.HandleMessage(ctx, "s1", "hello there")
	if !errors.Is(err, assistant.ErrChatUnavailable) {
		t.Fatalf("err = %v, want ErrChatUnavailable", err)
	}
	if resp.Text != "I'm currently unavailable. Please check my configuration." {
		t.Errorf("Text = %q", resp.Text)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestAssistant(t)

	if _, err := a.HandleMessage(ctx, "s1", "add homework"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	// A second session is not inside s1's dialogue.
	resp, err := a.HandleMessage(ctx, "s2", "what assignments do i have")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if resp.Command != "view_assignments" {
		t.Errorf("s2 Command = %q", resp.Command)
	}

	// s1 is still waiting for the course.
	resp, err = a.HandleMessage(ctx, "s1", "math")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if resp.Text != "What's the assignment about?" {
		t.Errorf("s1 Text = %q", resp.Text)
	}

	a.Reset("s1")
	resp, err = a.HandleMessage(ctx, "s1", "what assignments do i have")
	if err != nil {
		t.Fatalf("HandleMessage after Reset: %v", err)
	}
	if resp.Command != "view_assignments" {
		t.Errorf("after Reset Command = %q", resp.Command)
	}
}
