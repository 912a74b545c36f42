package dialog_test

import (
	"testing"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/dialog"
)

func TestStartAsksFirstField(t *testing.T) {
	s := dialog.NewSession(nil)
	r := s.Start(dialog.ContextAddAssignment, nil)
	if r.Done {
		t.Fatal("empty start reported Done")
	}
	if r.Field != dialog.FieldCourse {
		t.Fatalf("Field = %q, want course", r.Field)
	}
	if r.Question != "What course is it for?" {
		t.Fatalf("Question = %q", r.Question)
	}
	if !s.Active() {
		t.Fatal("session not active after Start")
	}
}

func TestStartWithFullSeedCompletesImmediately(t *testing.T) {
	s := dialog.NewSession(nil)
	r := s.Start(dialog.ContextAddAssignment, map[string]string{
		"course":      "Physics",
		"description": "lab report",
		"due_date":    "friday",
	})
	if !r.Done {
		t.Fatal("fully seeded start did not complete")
	}
	if r.Data["course"] != "Physics" {
		t.Fatalf("Data = %v", r.Data)
	}
	if s.Active() {
		t.Fatal("session still active after completion")
	}
}

func TestSingleUtteranceFillsEverything(t *testing.T) {
	s := dialog.NewSession(nil)
	s.Start(dialog.ContextAddAssignment, nil)

	r := s.Respond("physics topic acceleration deadline next week")
	if !r.Done {
		t.Fatalf("not Done after full utterance; waiting for %q", r.Field)
	}
	want := map[string]string{
		"course":      "Physics",
		"description": "acceleration",
		"due_date":    "next week",
	}
	for k, v := range want {
		if r.Data[k] != v {
			t.Fatalf("Data[%q] = %q, want %q (all: %v)", k, r.Data[k], v, r.Data)
		}
	}
}

func TestTerseTurnByTurn(t *testing.T) {
	s := dialog.NewSession(nil)
	s.Start(dialog.ContextAddAssignment, nil)

	r := s.Respond("math")
	if r.Done || r.Field != dialog.FieldDescription {
		t.Fatalf("after course: %+v", r)
	}

	r = s.Respond("chapter 5 problems")
	if r.Done || r.Field != dialog.FieldDueDate {
		t.Fatalf("after description: %+v", r)
	}
	if r.Question != "When is it due?" {
		t.Fatalf("Question = %q", r.Question)
	}

	r = s.Respond("tomorrow")
	if !r.Done {
		t.Fatalf("not Done after due date: %+v", r)
	}
	if r.Data["course"] != "Math" {
		t.Fatalf("course = %q, want Math (title-cased)", r.Data["course"])
	}
	if r.Data["description"] != "chapter 5 problems" {
		t.Fatalf("description = %q", r.Data["description"])
	}
	if r.Data["due_date"] != "tomorrow" {
		t.Fatalf("due_date = %q", r.Data["due_date"])
	}
}

func TestCourseFromCueWord(t *testing.T) {
	s := dialog.NewSession(nil)
	s.Start(dialog.ContextAddAssignment, nil)

	r := s.Respond("it's for chemistry about titration due friday")
	if !r.Done {
		t.Fatalf("not Done: %+v", r)
	}
	if r.Data["course"] != "Chemistry" {
		t.Fatalf("course = %q, want Chemistry", r.Data["course"])
	}
	if r.Data["description"] != "titration" {
		t.Fatalf("description = %q, want titration", r.Data["description"])
	}
	if r.Data["due_date"] != "friday" {
		t.Fatalf("due_date = %q, want friday", r.Data["due_date"])
	}
}

func TestUnusableTurnReasksSameQuestion(t *testing.T) {
	s := dialog.NewSession(nil)
	s.Start(dialog.ContextAddAssignment, map[string]string{"course": "Bio"})

	// Pending field is description, but the reply is pure date talk:
	// the date lands in due_date and the description question repeats.
	r := s.Respond("due tomorrow")
	if r.Done {
		t.Fatal("unexpectedly Done")
	}
	if r.Field != dialog.FieldDescription {
		t.Fatalf("Field = %q, want description", r.Field)
	}
}

func TestStudyPlanWholeUtteranceAnswers(t *testing.T) {
	s := dialog.NewSession(nil)
	r := s.Start(dialog.ContextCreateStudyPlan, nil)
	if r.Field != dialog.FieldSubject {
		t.Fatalf("Field = %q, want subject", r.Field)
	}

	r = s.Respond("organic chemistry")
	if r.Field != dialog.FieldExamDate {
		t.Fatalf("after subject: %+v", r)
	}

	r = s.Respond("next friday")
	if r.Field != dialog.FieldHoursPerDay {
		t.Fatalf("after exam date: %+v", r)
	}

	r = s.Respond("2 hours")
	if !r.Done {
		t.Fatalf("not Done: %+v", r)
	}
	if r.Data["subject"] != "organic chemistry" {
		t.Fatalf("subject = %q", r.Data["subject"])
	}
	if r.Data["exam_date"] != "next friday" {
		t.Fatalf("exam_date = %q", r.Data["exam_date"])
	}
	if r.Data["hours_per_day"] != "2 hours" {
		t.Fatalf("hours_per_day = %q", r.Data["hours_per_day"])
	}
}

func TestReset(t *testing.T) {
	s := dialog.NewSession(nil)
	s.Start(dialog.ContextAddAssignment, nil)
	s.Respond("physics")
	s.Reset()

	if s.Active() {
		t.Fatal("active after Reset")
	}
	if s.NextField() != "" {
		t.Fatalf("NextField = %q after Reset", s.NextField())
	}
	// A respond on an idle session is a no-op.
	if r := s.Respond("anything"); r.Done || r.Field != "" {
		t.Fatalf("idle Respond = %+v", r)
	}
}
