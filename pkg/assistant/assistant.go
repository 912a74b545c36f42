// Package assistant composes the classifier, the slot-filling dialogue,
// and the education service into the message-handling core: one
// HandleMessage call per user utterance, with per-session conversation
// state and an LLM fallback for anything that is not a command.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/dialog"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/education"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/focus"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/intent"
)

// ErrChatUnavailable is returned when an utterance needs the chat
// fallback but no ChatModel is configured.
var ErrChatUnavailable = errors.New("assistant: chat model not configured")

// defaultHoursPerDay is assumed when the study-plan dialogue gets an
// hours answer with no number in it.
const defaultHoursPerDay = 2.0

// historyLimit caps per-session chat history (user+assistant turns).
const historyLimit = 40

// Command names a Response carries back to the front end.
const (
	CommandConversationQuestion  = "conversation_question"
	CommandAddAssignmentComplete = "add_assignment_complete"
	CommandCreatePlanComplete    = "create_study_plan_complete"
	CommandChat                  = "ai_chat"
)

// Response is the outcome of one handled message.
type Response struct {
	// Text is the user-facing reply, suitable for speech.
	Text string

	// Display is an optional richer terminal rendering of Text.
	Display string

	// Command names what was executed: an intent wire name, one of the
	// Command* constants, or "" when nothing matched.
	Command string

	// ConversationActive and WaitingFor are set while a slot-filling
	// dialogue is in progress.
	ConversationActive bool
	WaitingFor         string
}

// Assistant is the message-handling core. Safe for concurrent use;
// each session's dialogue is serialized under the assistant lock.
type Assistant struct {
	edu    *education.Service
	chat   ChatModel
	search Searcher
	diag   DiagnosticsProvider
	player Player
	timer  *focus.Timer

	questions dialog.Questions
	classify  intent.Config

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	dialog  *dialog.Session
	history []ChatMessage
}

// AssistantOption configures an Assistant.
type AssistantOption func(*Assistant)

// WithChatModel sets the free-form chat fallback.
func WithChatModel(m ChatModel) AssistantOption {
	return func(a *Assistant) { a.chat = m }
}

// WithSearcher sets the web-search collaborator.
func WithSearcher(s Searcher) AssistantOption {
	return func(a *Assistant) { a.search = s }
}

// WithDiagnostics sets the host diagnostics collaborator.
func WithDiagnostics(d DiagnosticsProvider) AssistantOption {
	return func(a *Assistant) { a.diag = d }
}

// WithPlayer sets the music playback collaborator.
func WithPlayer(p Player) AssistantOption {
	return func(a *Assistant) { a.player = p }
}

// WithQuestions overrides the canned slot-filling questions.
func WithQuestions(q dialog.Questions) AssistantOption {
	return func(a *Assistant) { a.questions = q }
}

// WithClassifier overrides the classification parameters (focus-timer
// defaults, music keyword mapping).
func WithClassifier(cfg intent.Config) AssistantOption {
	return func(a *Assistant) { a.classify = cfg }
}

// New builds an Assistant over the education service. All
// collaborators are optional; missing ones degrade to polite refusals.
func New(edu *education.Service, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		edu:      edu,
		timer:    focus.New(),
		classify: intent.DefaultConfig(),
		sessions: make(map[string]*session),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Education exposes the underlying service for direct (non-chat) use.
func (a *Assistant) Education() *education.Service { return a.edu }

// FocusTimer exposes the focus-mode timer state.
func (a *Assistant) FocusTimer() *focus.Timer { return a.timer }

// HandleMessage processes one user utterance for the given session.
// An active dialogue consumes the turn first; otherwise the utterance
// is classified and dispatched, and unmatched text goes to the chat
// fallback.
func (a *Assistant) HandleMessage(ctx context.Context, sessionID, text string) (*Response, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("assistant: empty message")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	sess := a.session(sessionID)

	if sess.dialog.Active() {
		return a.continueDialogue(ctx, sess, text)
	}

	it := intent.ClassifyWith(text, a.classify)
	if it.Kind == intent.KindNone {
		return a.chatFallback(ctx, sess, text)
	}

	resp, err := a.dispatch(ctx, sess, it)
	if err == nil && resp != nil && !resp.ConversationActive {
		sess.remember(text, resp.Text)
	}
	return resp, err
}

// Reset discards the session's dialogue state and chat history.
func (a *Assistant) Reset(sessionID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, sessionID)
}

func (a *Assistant) session(id string) *session {
	s, ok := a.sessions[id]
	if !ok {
		s = &session{dialog: dialog.NewSession(a.questions)}
		a.sessions[id] = s
	}
	return s
}

// continueDialogue feeds the turn into the active dialogue and executes
// the gathered action once complete.
func (a *Assistant) continueDialogue(ctx context.Context, sess *session, text string) (*Response, error) {
	r := sess.dialog.Respond(text)
	if !r.Done {
		return &Response{
			Text:               r.Question,
			Command:            CommandConversationQuestion,
			ConversationActive: true,
			WaitingFor:         r.Field,
		}, nil
	}

	switch r.Context {
	case dialog.ContextAddAssignment:
		return a.finishAddAssignment(ctx, sess, r.Data)
	case dialog.ContextCreateStudyPlan:
		return a.finishCreatePlan(ctx, sess, r.Data)
	default:
		return nil, fmt.Errorf("assistant: dialogue completed with unknown context %s", r.Context)
	}
}

func (a *Assistant) finishAddAssignment(ctx context.Context, sess *session, data map[string]string) (*Response, error) {
	_, msg, err := a.edu.AddAssignment(ctx,
		data[dialog.FieldCourse],
		data[dialog.FieldDescription],
		data[dialog.FieldDueDate])

	var rej *education.RejectError
	if errors.As(err, &rej) {
		return &Response{
			Text:    "Sorry, " + rej.Reason,
			Command: CommandAddAssignmentComplete,
		}, nil
	}
	resp := &Response{Text: msg, Command: CommandAddAssignmentComplete}
	if err != nil {
		// Record exists in memory but may not have persisted.
		return resp, err
	}
	sess.remember("", msg)
	return resp, nil
}

func (a *Assistant) finishCreatePlan(ctx context.Context, sess *session, data map[string]string) (*Response, error) {
	hours := parseHours(data[dialog.FieldHoursPerDay])

	plan, msg, err := a.edu.CreatePlan(ctx,
		data[dialog.FieldSubject],
		data[dialog.FieldExamDate],
		hours, nil)

	var rej *education.RejectError
	if errors.As(err, &rej) {
		return &Response{
			Text:    "Sorry, " + rej.Reason,
			Command: CommandCreatePlanComplete,
		}, nil
	}
	resp := &Response{Text: msg, Command: CommandCreatePlanComplete}
	if err != nil {
		return resp, err
	}
	resp.Display = FormatPlanDisplay(plan)
	sess.remember("", msg)
	return resp, nil
}

// dispatch executes a classified intent.
func (a *Assistant) dispatch(ctx context.Context, sess *session, it intent.Intent) (*Response, error) {
	switch it.Kind {
	case intent.KindAddAssignment:
		r := sess.dialog.Start(dialog.ContextAddAssignment, nil)
		return &Response{
			Text:               "I'll help you add that assignment. " + r.Question,
			Command:            it.Kind.String(),
			ConversationActive: true,
			WaitingFor:         r.Field,
		}, nil

	case intent.KindCreateStudyPlan:
		r := sess.dialog.Start(dialog.ContextCreateStudyPlan, nil)
		return &Response{
			Text:               "I'll create a study plan for you. " + r.Question,
			Command:            it.Kind.String(),
			ConversationActive: true,
			WaitingFor:         r.Field,
		}, nil

	case intent.KindViewAssignments:
		list, err := a.edu.Assignments(ctx, education.Filter(it.Filter))
		if err != nil {
			return nil, err
		}
		now := a.edu.Now()
		return &Response{
			Text:    FormatAssignmentsSpeech(list, now),
			Display: FormatAssignmentsDisplay(list, now),
			Command: it.Kind.String(),
		}, nil

	case intent.KindTodayStudyPlan:
		tasks, err := a.edu.TodaySessions(ctx)
		if err != nil {
			return nil, err
		}
		return &Response{
			Text:    FormatTodaySpeech(tasks),
			Display: FormatTodayDisplay(tasks),
			Command: it.Kind.String(),
		}, nil

	case intent.KindDiagnostics:
		return a.runDiagnostics(ctx, it)

	case intent.KindFocusStart, intent.KindFocusStop, intent.KindFocusPause,
		intent.KindFocusResume, intent.KindFocusExtend:
		return a.runFocus(it), nil

	case intent.KindMusicPlay:
		if a.player != nil {
			if err := a.player.Play(ctx, it.File); err != nil {
				return nil, fmt.Errorf("assistant: play music: %w", err)
			}
		}
		return &Response{Text: fmt.Sprintf("Playing %s.", it.File), Command: it.Kind.String()}, nil

	case intent.KindMusicStop:
		if a.player != nil {
			if err := a.player.Stop(ctx); err != nil {
				return nil, fmt.Errorf("assistant: stop music: %w", err)
			}
		}
		return &Response{Text: "Music stopped.", Command: it.Kind.String()}, nil

	case intent.KindSearch:
		if a.search != nil {
			if err := a.search.Search(ctx, it.Query); err != nil {
				return nil, fmt.Errorf("assistant: search: %w", err)
			}
		}
		return &Response{Text: "Searching for " + it.Query, Command: it.Kind.String()}, nil
	}

	return nil, fmt.Errorf("assistant: unhandled intent %s", it.Kind)
}

func (a *Assistant) runDiagnostics(ctx context.Context, it intent.Intent) (*Response, error) {
	if a.diag == nil {
		return &Response{Text: "Error getting system diagnostics", Command: it.Kind.String()}, nil
	}
	d, err := a.diag.Diagnostics(ctx)
	if err != nil {
		return &Response{Text: "Error getting system diagnostics", Command: it.Kind.String()}, err
	}
	return &Response{
		Text:    FormatDiagnosticsSpeech(d),
		Display: FormatDiagnosticsDisplay(d),
		Command: it.Kind.String(),
	}, nil
}

func (a *Assistant) runFocus(it intent.Intent) *Response {
	resp := &Response{Command: it.Kind.String()}

	switch it.Kind {
	case intent.KindFocusStart:
		switch err := a.timer.Start(it.Minutes); {
		case errors.Is(err, focus.ErrBadMinutes):
			resp.Text = "I need a positive number of minutes for focus mode."
			return resp
		case err != nil:
			resp.Text = "Focus mode is already running."
			return resp
		}
		resp.Text = fmt.Sprintf("Focus mode started for %d minutes.", it.Minutes)

	case intent.KindFocusStop:
		elapsed, err := a.timer.Stop()
		if err != nil {
			resp.Text = "Focus mode isn't running."
			return resp
		}
		resp.Text = fmt.Sprintf("Focus mode stopped after %d minutes.", int(elapsed.Minutes()))

	case intent.KindFocusPause:
		if err := a.timer.Pause(); err != nil {
			resp.Text = "There's no focus session to pause."
			return resp
		}
		resp.Text = "Focus mode paused."

	case intent.KindFocusResume:
		if err := a.timer.Resume(); err != nil {
			resp.Text = "There's no paused focus session."
			return resp
		}
		resp.Text = fmt.Sprintf("Focus mode resumed. %d minutes left.", remainingMinutes(a.timer))

	case intent.KindFocusExtend:
		switch err := a.timer.Extend(it.Minutes); {
		case errors.Is(err, focus.ErrBadMinutes):
			resp.Text = "I need a positive number of minutes to add."
			return resp
		case err != nil:
			resp.Text = "Focus mode isn't running."
			return resp
		}
		resp.Text = fmt.Sprintf("Added %d minutes. %d minutes left.", it.Minutes, remainingMinutes(a.timer))
	}
	return resp
}

func remainingMinutes(t *focus.Timer) int {
	return int(t.Remaining().Round(time.Minute).Minutes())
}

// chatFallback routes an unmatched utterance to the LLM.
func (a *Assistant) chatFallback(ctx context.Context, sess *session, text string) (*Response, error) {
	if a.chat == nil {
		return &Response{
			Text: "I'm currently unavailable. Please check my configuration.",
		}, ErrChatUnavailable
	}

	sess.history = append(sess.history, ChatMessage{Role: "user", Content: text})
	reply, err := a.chat.Reply(ctx, sess.history)
	if err != nil {
		return &Response{
			Text: "I'm having trouble processing that right now. Please try again.",
		}, fmt.Errorf("assistant: chat fallback: %w", err)
	}
	sess.history = append(sess.history, ChatMessage{Role: "assistant", Content: reply})
	sess.trim()

	return &Response{Text: reply, Command: CommandChat}, nil
}

// remember appends a command exchange to chat history so the fallback
// model keeps context across mixed command/chat conversations.
func (s *session) remember(user, reply string) {
	if user != "" {
		s.history = append(s.history, ChatMessage{Role: "user", Content: user})
	}
	if reply != "" {
		s.history = append(s.history, ChatMessage{Role: "assistant", Content: reply})
	}
	s.trim()
}

func (s *session) trim() {
	if len(s.history) > historyLimit {
		s.history = s.history[len(s.history)-historyLimit:]
	}
}

// parseHours pulls the first number out of an hours answer like
// "2 hours" or "2.5". Missing numbers fall back to a sane default.
func parseHours(text string) float64 {
	var (
		n      float64
		frac   float64
		scale  = 0.1
		inNum  bool
		inFrac bool
	)
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			if inFrac {
				frac += float64(r-'0') * scale
				scale /= 10
			} else {
				n = n*10 + float64(r-'0')
			}
			inNum = true
		case r == '.' && inNum && !inFrac:
			inFrac = true
		default:
			if inNum {
				return n + frac
			}
		}
	}
	if inNum {
		return n + frac
	}
	return defaultHoursPerDay
}
