// Package education implements the assignment manager and study
// planner: persisted assignment and study-plan records over a kv.Store,
// and the deterministic scheduler that turns an exam date and a daily
// hour budget into a day-by-day session plan.
package education

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an assignment, plan, or session id does
// not match any record.
var ErrNotFound = errors.New("education: not found")

// RejectError is a domain precondition failure. Reason is user-facing
// and stable: existing front ends match on these strings.
type RejectError struct {
	Reason string
}

func (e *RejectError) Error() string { return e.Reason }

func reject(reason string) error { return &RejectError{Reason: reason} }

// User-facing rejection reasons.
const (
	msgBadDueDate  = "I couldn't understand that date. Try 'Friday', 'tomorrow', or '12/25'."
	msgBadExamDate = "I couldn't understand the exam date. Try 'Monday', 'next Friday', or '12/15'."
	msgExamPast    = "That exam date is in the past."
	msgExamToday   = "Your exam is today! It's too late for a study plan."
)

// Filter narrows assignment listings by due-date window.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterToday    Filter = "today"     // due before tomorrow midnight
	FilterThisWeek Filter = "this_week" // due within 7 days
	FilterUrgent   Filter = "urgent"    // due within 3 days
)

// Assignment is a persisted homework record. Records are never deleted;
// completion only flags them.
type Assignment struct {
	ID          int       `msgpack:"id" json:"id"`
	Course      string    `msgpack:"course" json:"course"`
	Description string    `msgpack:"description" json:"description"`
	DueDate     time.Time `msgpack:"due_date" json:"due_date"`
	Completed   bool      `msgpack:"completed" json:"completed"`
	CompletedAt time.Time `msgpack:"completed_at,omitempty" json:"completed_at,omitempty"`
	AddedAt     time.Time `msgpack:"added_at" json:"added_at"`
}

// StudySession is one day of a study plan. Day is 1-based.
type StudySession struct {
	Day       int       `msgpack:"day" json:"day"`
	Date      time.Time `msgpack:"date" json:"date"`
	Topic     string    `msgpack:"topic" json:"topic"`
	Hours     float64   `msgpack:"hours" json:"hours"`
	Completed bool      `msgpack:"completed" json:"completed"`
}

/// StudyPlan is a persisted plan: one StudySession per day between
// creation and the exam. len(Schedule) == DaysUntilExam always holds,
// and the final session is the review day.
type StudyPlan struct {
	ID            int            `msgpack:"id" json:"id"`
	Subject       string         `msgpack:"subject" json:"subject"`
	ExamDate      time.Time      `msgpack:"exam_date" json:"exam_date"`
	HoursPerDay   float64        `msgpack:"hours_per_day" json:"hours_per_day"`
	Topics        []string       `msgpack:"topics" json:"topics"`
	Schedule      []StudySession `msgpack:"schedule" json:"schedule"`
	CreatedAt     time.Time      `msgpack:"created_at" json:"created_at"`
	TotalHours    float64        `msgpack:"total_hours" json:"total_hours"`
	DaysUntilExam int            `msgpack:"days_until_exam" json:"days_until_exam"`
}

// TodayTask is a study session due today, joined with its plan's
// subject for presentation.
type TodayTask struct {
	Subject string  `json:"subject"`
	Topic   string  `json:"topic"`
	Hours   float64 `json:"hours"`
	PlanID  int     `json:"plan_id"`
	Day     int     `json:"day"`
}
