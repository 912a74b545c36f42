// Package dialog implements the multi-turn slot-filling session that
// collects the required fields for an intent before executing it.
//
// A Session is a small state machine: Idle until Start activates it
// with a Context, then AwaitingField while required fields are missing.
// Each turn fills what it can from the user's reply and either asks for
// the next missing field or reports completion. One Session serves one
// logical conversation; concurrent dialogues each own their own
// instance, keyed by the caller's session identity.
package dialog

import "strings"

// Context identifies which intent's fields are being gathered.
type Context int

const (
	ContextNone Context = iota
	ContextAddAssignment
	ContextCreateStudyPlan
)

// Field names, in the order they are asked.
const (
	FieldCourse      = "course"
	FieldDescription = "description"
	FieldDueDate     = "due_date"

	FieldSubject     = "subject"
	FieldExamDate    = "exam_date"
	FieldHoursPerDay = "hours_per_day"
)

// Fields returns the ordered list of required fields for the context.
func (c Context) Fields() []string {
	switch c {
	case ContextAddAssignment:
		return []string{FieldCourse, FieldDescription, FieldDueDate}
	case ContextCreateStudyPlan:
		return []string{FieldSubject, FieldExamDate, FieldHoursPerDay}
	default:
		return nil
	}
}

// String returns the wire name of the context.
func (c Context) String() string {
	switch c {
	case ContextAddAssignment:
		return "add_assignment"
	case ContextCreateStudyPlan:
		return "create_study_plan"
	default:
		return "none"
	}
}

// Questions maps context and field name to the canned question asked
// when that field is missing. Configuration data, not logic.
type Questions map[Context]map[string]string

// DefaultQuestions are the stock follow-up questions.
var DefaultQuestions = Questions{
	ContextAddAssignment: {
		FieldCourse:      "What course is it for?",
		FieldDescription: "What's the assignment about?",
		FieldDueDate:     "When is it due?",
	},
	ContextCreateStudyPlan: {
		FieldSubject:     "What subject is the exam on?",
		FieldExamDate:    "When is the exam?",
		FieldHoursPerDay: "How many hours per day can you study?",
	},
}

// Reply is the outcome of a Start or Respond turn.
type Reply struct {
	// Done reports that all required fields are gathered. Data holds
	// them and the session has returned to Idle.
	Done bool

	// Data is the gathered field map, set only when Done.
	Data map[string]string

	// Context is the dialogue context the reply belongs to.
	Context Context

	// Field and Question identify the next missing field when not Done.
	Field    string
	Question string
}

// Session is the slot-filling state machine for one conversation.
// Not safe for concurrent use; a session is driven as a strict
// request/response sequence by its owner.
type Session struct {
	questions Questions

	active    bool
	context   Context
	gathered  map[string]string
	nextField string
}

// NewSession creates an idle session. Pass nil to use DefaultQuestions.
func NewSession(q Questions) *Session {
	if q == nil {
		q = DefaultQuestions
	}
	return &Session{questions: q}
}

// Active reports whether a dialogue is in progress.
func (s *Session) Active() bool { return s.active }

// Context returns the active dialogue context, or ContextNone.
func (s *Session) Context() Context {
	if !s.active {
		return ContextNone
	}
	return s.context
}

// NextField returns the field the session is waiting for, or "".
func (s *Session) NextField() string { return s.nextField }

// Start activates the session for ctx, seeding gathered fields from
// seed (typically inline extraction from the triggering utterance).
// If the seed already satisfies every required field the reply is
// immediately Done and the session stays Idle.
func (s *Session) Start(ctx Context, seed map[string]string) Reply {
	s.active = true
	s.context = ctx
	s.gathered = make(map[string]string, len(ctx.Fields()))
	for k, v := range seed {
		if v != "" {
			s.gathered[k] = v
		}
	}
	s.advance()
	return s.reply()
}

// Respond feeds one user utterance into the active dialogue. For the
// add-assignment context a heuristic extractor may fill several fields
// from a single reply; other contexts take the whole utterance as the
// answer to the pending field. A turn that extracts nothing leaves the
// state unchanged and re-asks the same question.
func (s *Session) Respond(text string) Reply {
	if !s.active || s.nextField == "" {
		return Reply{}
	}

	switch s.context {
	case ContextAddAssignment:
		extractAssignment(text, s.gathered, s.nextField)
	default:
		if v := strings.TrimSpace(text); v != "" {
			s.gathered[s.nextField] = v
		}
	}

	s.advance()
	return s.reply()
}

// Reset returns the session to the empty idle state, discarding any
// gathered fields.
func (s *Session) Reset() {
	s.active = false
	s.context = ContextNone
	s.gathered = nil
	s.nextField = ""
}

// advance points nextField at the first required field not yet
// gathered, or "" when all are present.
func (s *Session) advance() {
	s.nextField = ""
	for _, f := range s.context.Fields() {
		if _, ok := s.gathered[f]; !ok {
			s.nextField = f
			return
		}
	}
}

// reply builds the turn outcome. Completion is transient: the gathered
// data is handed to the caller and the session resets to Idle.
func (s *Session) reply() Reply {
	if s.nextField != "" {
		return Reply{
			Context:  s.context,
			Field:    s.nextField,
			Question: s.questions[s.context][s.nextField],
		}
	}
	r := Reply{Done: true, Context: s.context, Data: s.gathered}
	s.Reset()
	return r
}
