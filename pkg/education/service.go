package education

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/dates"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/kv"
)

// Service owns the assignment and study-plan collections. All reads go
// back to the store so concurrent writers (another process on the same
// data directory) are tolerated with last-write-wins semantics.
type Service struct {
	store kv.Store
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock injects the time source. Tests pin it to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service over the given store.
func NewService(store kv.Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Now returns the service's current time.
func (s *Service) Now() time.Time { return s.now() }

// AddAssignment resolves the due-date text, persists a new assignment,
// and registers its course. The returned message is the user-facing
// confirmation.
//
// On a storage failure the assignment (with its assigned id) is still
// returned along with the error: the in-memory result is valid, the
// save may not have persisted, and the caller decides how to warn.
func (s *Service) AddAssignment(ctx context.Context, course, description, dueDateText string) (*Assignment, string, error) {
	now := s.now()
	due, err := dates.Resolve(dueDateText, now)
	if err != nil {
		return nil, "", reject(msgBadDueDate)
	}

	id, err := s.nextID(ctx, assignmentPrefix)
	if err != nil {
		return nil, "", fmt.Errorf("education: allocate assignment id: %w", err)
	}
	a := &Assignment{
		ID:          id,
		Course:      course,
		Description: description,
		DueDate:     due,
		AddedAt:     now,
	}

	msg := fmt.Sprintf("Added %s assignment due %s.", course, dueIn(due, now))

	data, err := msgpack.Marshal(a)
	if err != nil {
		return a, msg, fmt.Errorf("education: encode assignment: %w", err)
	}
	if err := s.store.Set(ctx, assignmentKey(id), data); err != nil {
		return a, msg, fmt.Errorf("education: save assignment: %w", err)
	}
	if err := s.store.Set(ctx, courseKey(course), []byte(course)); err != nil {
		return a, msg, fmt.Errorf("education: register course: %w", err)
	}
	return a, msg, nil
}

// Assignments lists open assignments sorted ascending by due date,
// narrowed by filter. Completed assignments are always excluded.
func (s *Service) Assignments(ctx context.Context, filter Filter) ([]Assignment, error) {
	var all []Assignment
	for e, err := range s.store.List(ctx, assignmentPrefix) {
		if err != nil {
			return nil, fmt.Errorf("education: list assignments: %w", err)
		}
		var a Assignment
		if err := msgpack.Unmarshal(e.Value, &a); err != nil {
			return nil, fmt.Errorf("education: decode assignment %s: %w", e.Key, err)
		}
		if !a.Completed {
			all = append(all, a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DueDate.Before(all[j].DueDate) })

	if filter == FilterAll || filter == "" {
		return all, nil
	}

	today := dates.StartOfDay(s.now())
	var cutoff time.Time
	switch filter {
	case FilterToday:
		cutoff = today.AddDate(0, 0, 1)
	case FilterThisWeek:
		cutoff = today.AddDate(0, 0, 7)
	case FilterUrgent:
		cutoff = today.AddDate(0, 0, 3)
	default:
		return all, nil
	}

	filtered := all[:0]
	for _, a := range all {
		if a.DueDate.Before(cutoff) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// CompleteAssignment flags an assignment done and stamps the completion
// time. Completing an already-completed assignment is a no-op success;
// only an unknown id fails, with ErrNotFound.
func (s *Service) CompleteAssignment(ctx context.Context, id int) (*Assignment, string, error) {
	var a Assignment
	if err := s.load(ctx, assignmentKey(id), &a); err != nil {
		return nil, "", err
	}
	a.Completed = true
	a.CompletedAt = s.now()

	msg := fmt.Sprintf("Marked %s assignment as complete. Well done!", a.Course)

	data, err := msgpack.Marshal(&a)
	if err != nil {
		return &a, msg, fmt.Errorf("education: encode assignment: %w", err)
	}
	if err := s.store.Set(ctx, assignmentKey(id), data); err != nil {
		return &a, msg, fmt.Errorf("education: save assignment: %w", err)
	}
	return &a, msg, nil
}

// CreatePlan resolves the exam-date text, builds the day-by-day
// schedule, and persists the plan. Rejections carry their user-facing
// reason: unresolvable date, exam in the past, or exam today.
func (s *Service) CreatePlan(ctx context.Context, subject, examDateText string, hoursPerDay float64, topics []string) (*StudyPlan, string, error) {
	now := s.now()
	examDate, err := dates.Resolve(examDateText, now)
	if err != nil {
		return nil, "", reject(msgBadExamDate)
	}

	daysUntil := dates.DaysUntil(examDate, now)
	if daysUntil < 0 {
		return nil, "", reject(msgExamPast)
	}
	if daysUntil == 0 {
		return nil, "", reject(msgExamToday)
	}

	if len(topics) == 0 {
		topics = placeholderTopics(daysUntil)
	}
	schedule := buildSchedule(topics, daysUntil, hoursPerDay, now)

	id, err := s.nextID(ctx, planPrefix)
	if err != nil {
		return nil, "", fmt.Errorf("education: allocate plan id: %w", err)
	}
	plan := &StudyPlan{
		ID:            id,
		Subject:       subject,
		ExamDate:      examDate,
		HoursPerDay:   hoursPerDay,
		Topics:        topics,
		Schedule:      schedule,
		CreatedAt:     now,
		TotalHours:    float64(daysUntil) * hoursPerDay,
		DaysUntilExam: daysUntil,
	}

	msg := fmt.Sprintf(
		"Study plan created for %s. You have %d days to prepare, studying %g hours per day. Let's start with %s.",
		subject, daysUntil, hoursPerDay, schedule[0].Topic)

	data, err := msgpack.Marshal(plan)
	if err != nil {
		return plan, msg, fmt.Errorf("education: encode plan: %w", err)
	}
	if err := s.store.Set(ctx, planKey(id), data); err != nil {
		return plan, msg, fmt.Errorf("education: save plan: %w", err)
	}
	return plan, msg, nil
}

// Plan fetches a study plan by id.
func (s *Service) Plan(ctx context.Context, id int) (*StudyPlan, error) {
	var p StudyPlan
	if err := s.load(ctx, planKey(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Plans lists all study plans in id order.
func (s *Service) Plans(ctx context.Context) ([]StudyPlan, error) {
	var all []StudyPlan
	for e, err := range s.store.List(ctx, planPrefix) {
		if err != nil {
			return nil, fmt.Errorf("education: list plans: %w", err)
		}
		var p StudyPlan
		if err := msgpack.Unmarshal(e.Value, &p); err != nil {
			return nil, fmt.Errorf("education: decode plan %s: %w", e.Key, err)
		}
		all = append(all, p)
	}
	return all, nil
}

// TodaySessions returns today's unfinished sessions across all plans
// whose exam has not passed yet.
func (s *Service) TodaySessions(ctx context.Context) ([]TodayTask, error) {
	now := s.now()
	plans, err := s.Plans(ctx)
	if err != nil {
		return nil, err
	}

	var tasks []TodayTask
	for _, p := range plans {
		if p.ExamDate.Before(now) {
			continue
		}
		for _, sess := range p.Schedule {
			if sess.Completed || !dates.SameDay(sess.Date, now) {
				continue
			}
			tasks = append(tasks, TodayTask{
				Subject: p.Subject,
				Topic:   sess.Topic,
				Hours:   sess.Hours,
				PlanID:  p.ID,
				Day:     sess.Day,
			})
		}
	}
	return tasks, nil
}

// MarkSessionComplete flags one day of a plan as studied and tells the
// user what comes next. Unknown plan id or day returns ErrNotFound.
func (s *Service) MarkSessionComplete(ctx context.Context, planID, day int) (string, error) {
	var p StudyPlan
	if err := s.load(ctx, planKey(planID), &p); err != nil {
		return "", err
	}

	for i := range p.Schedule {
		if p.Schedule[i].Day != day {
			continue
		}
		p.Schedule[i].Completed = true

		data, err := msgpack.Marshal(&p)
		if err != nil {
			return "", fmt.Errorf("education: encode plan: %w", err)
		}
		if err := s.store.Set(ctx, planKey(planID), data); err != nil {
			return "", fmt.Errorf("education: save plan: %w", err)
		}

		if day < len(p.Schedule) {
			return fmt.Sprintf("Great work! Next up: %s", p.Schedule[day].Topic), nil
		}
		return "Study plan completed! You're ready for the exam.", nil
	}
	return "", ErrNotFound
}

// Courses lists the known course names.
func (s *Service) Courses(ctx context.Context) ([]string, error) {
	var names []string
	for e, err := range s.store.List(ctx, coursePrefix) {
		if err != nil {
			return nil, fmt.Errorf("education: list courses: %w", err)
		}
		names = append(names, string(e.Value))
	}
	return names, nil
}

// load fetches and decodes one record, mapping a store miss to the
// domain ErrNotFound.
func (s *Service) load(ctx context.Context, key string, v any) error {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if err == kv.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("education: load %s: %w", key, err)
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("education: decode %s: %w", key, err)
	}
	return nil
}

// nextID allocates max existing id + 1 within one collection, starting
// at 1. Records are never deleted, so this equals count+1.
func (s *Service) nextID(ctx context.Context, prefix string) (int, error) {
	maxID := 0
	for e, err := range s.store.List(ctx, prefix) {
		if err != nil {
			return 0, err
		}
		seg := e.Key[strings.LastIndex(e.Key, kv.Sep)+1:]
		id, err := strconv.Atoi(seg)
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

// dueIn phrases a due date relative to now.
func dueIn(due, now time.Time) string {
	switch days := dates.DaysUntil(due, now); {
	case days <= 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
