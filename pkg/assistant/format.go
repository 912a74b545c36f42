package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/dates"
	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/education"
)

// speechLimit caps how many assignments are read aloud.
const speechLimit = 5

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	soonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	doneStyle    = lipgloss.NewStyle().Faint(true)
	ruleStyle    = lipgloss.NewStyle().Faint(true)
)

func rule(n int) string { return ruleStyle.Render(strings.Repeat("─", n)) }

// relativeDay phrases how far away a deadline is.
func relativeDay(due, now time.Time) string {
	switch days := dates.DaysUntil(due, now); {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// FormatAssignmentsSpeech renders an assignment list for speech: at
// most five are named, the rest are counted.
func FormatAssignmentsSpeech(list []education.Assignment, now time.Time) string {
	if len(list) == 0 {
		return "You have no upcoming assignments. Well done!"
	}

	var parts []string
	for _, a := range list[:min(speechLimit, len(list))] {
		parts = append(parts, fmt.Sprintf("%s, %s", a.Course, relativeDay(a.DueDate, now)))
	}
	if len(list) > speechLimit {
		parts = append(parts, fmt.Sprintf("and %d more", len(list)-speechLimit))
	}
	return fmt.Sprintf("You have %d assignments: %s.", len(list), strings.Join(parts, ", "))
}

// FormatAssignmentsDisplay renders an urgency-coloured assignment table
// for the terminal.
func FormatAssignmentsDisplay(list []education.Assignment, now time.Time) string {
	if len(list) == 0 {
		return "No upcoming assignments!"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("UPCOMING ASSIGNMENTS (%d)", len(list))) + "\n")
	b.WriteString(rule(60) + "\n")

	for _, a := range list {
		var urgency string
		switch days := dates.DaysUntil(a.DueDate, now); {
		case days < 0:
			urgency = overdueStyle.Render("OVERDUE")
		case days == 0:
			urgency = overdueStyle.Render("TODAY")
		case days == 1:
			urgency = soonStyle.Render("TOMORROW")
		case days <= 3:
			urgency = soonStyle.Render(fmt.Sprintf("%d DAYS", days))
		default:
			urgency = okStyle.Render(fmt.Sprintf("%d DAYS", days))
		}
		fmt.Fprintf(&b, "%-20s #%d %-15s %s\n", urgency, a.ID, a.Course, a.Description)
	}
	b.WriteString(rule(60))
	return b.String()
}

// FormatTodaySpeech renders today's study tasks for speech.
func FormatTodaySpeech(tasks []education.TodayTask) string {
	if len(tasks) == 0 {
		return "You have no study sessions planned for today."
	}
	var parts []string
	for _, t := range tasks {
		parts = append(parts, fmt.Sprintf("%g hours of %s for %s", t.Hours, t.Topic, t.Subject))
	}
	return "Today you should study: " + strings.Join(parts, ", and ")
}

// FormatTodayDisplay renders today's study tasks for the terminal.
func FormatTodayDisplay(tasks []education.TodayTask) string {
	if len(tasks) == 0 {
		return "No study sessions planned for today."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("TODAY'S STUDY PLAN") + "\n")
	b.WriteString(rule(40) + "\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "• %s: %s (%gh)\n", t.Subject, t.Topic, t.Hours)
	}
	b.WriteString(rule(40))
	return b.String()
}

// FormatPlanDisplay renders a study plan schedule for the terminal.
func FormatPlanDisplay(plan *education.StudyPlan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("STUDY PLAN: "+plan.Subject) + "\n")
	b.WriteString(rule(60) + "\n")
	fmt.Fprintf(&b, "Exam date:       %s\n", plan.ExamDate.Format("Monday, January 2"))
	fmt.Fprintf(&b, "Days to prepare: %d\n", plan.DaysUntilExam)
	fmt.Fprintf(&b, "Total hours:     %.1f\n", plan.TotalHours)
	fmt.Fprintf(&b, "Hours per day:   %.1f\n", plan.HoursPerDay)
	b.WriteString("\nDaily schedule:\n")

	for _, s := range plan.Schedule {
		line := fmt.Sprintf("Day %d (%s): %s - %.1fh",
			s.Day, s.Date.Format("Mon, Jan 2"), s.Topic, s.Hours)
		if s.Completed {
			line = doneStyle.Render("✓ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(rule(60))
	return b.String()
}

// FormatDiagnosticsSpeech renders a health snapshot for speech.
func FormatDiagnosticsSpeech(d *Diagnostics) string {
	var parts []string
	if d.BatteryPercent != "" {
		parts = append(parts, fmt.Sprintf("Battery is at %s, %s", d.BatteryPercent, d.BatteryStatus))
	}
	parts = append(parts, fmt.Sprintf("CPU usage is %s", d.CPUUsage))
	if d.CPUTemp != "" {
		parts = append(parts, fmt.Sprintf("CPU temperature is %s", d.CPUTemp))
	}
	parts = append(parts, fmt.Sprintf("RAM usage is at %.0f%%", d.RAMPercent))
	return strings.Join(parts, ". ") + "."
}

// FormatDiagnosticsDisplay renders a health snapshot for the terminal.
func FormatDiagnosticsDisplay(d *Diagnostics) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SYSTEM DIAGNOSTICS") + "\n")
	b.WriteString(rule(50) + "\n")
	if d.BatteryPercent != "" {
		fmt.Fprintf(&b, "Battery:   %s (%s)\n", d.BatteryPercent, d.BatteryStatus)
	}
	fmt.Fprintf(&b, "CPU usage: %s\n", d.CPUUsage)
	if d.CPUTemp != "" {
		fmt.Fprintf(&b, "CPU temp:  %s\n", d.CPUTemp)
	}
	fmt.Fprintf(&b, "RAM usage: %s\n", d.RAMUsage)
	fmt.Fprintf(&b, "Disk:      %s\n", d.DiskUsage)
	b.WriteString(rule(50))
	return b.String()
}

// DailyBrief is the morning summary: how many classes have open work,
// what's due soon, and today's planned study load.
type DailyBrief struct {
	Classes    int     `json:"classes"`
	DueSoon    int     `json:"due_soon"`
	StudyHours float64 `json:"study_hours"`
}

// BuildDailyBrief aggregates the brief from the education service.
func BuildDailyBrief(ctx context.Context, edu *education.Service) (*DailyBrief, error) {
	all, err := edu.Assignments(ctx, education.FilterAll)
	if err != nil {
		return nil, err
	}
	urgent, err := edu.Assignments(ctx, education.FilterUrgent)
	if err != nil {
		return nil, err
	}
	tasks, err := edu.TodaySessions(ctx)
	if err != nil {
		return nil, err
	}

	courses := make(map[string]struct{})
	for _, a := range all {
		courses[a.Course] = struct{}{}
	}
	hours := 0.0
	for _, t := range tasks {
		hours += t.Hours
	}

	return &DailyBrief{
		Classes:    len(courses),
		DueSoon:    len(urgent),
		StudyHours: hours,
	}, nil
}
