package education

import (
	"fmt"
	"time"

	"github.com/jantorestrimer2011-eng/JARIVSedu/pkg/dates"
)

// FinalReviewTopic is the label forced onto the last scheduled day,
// whatever the topic rotation would have assigned.
const FinalReviewTopic = "Final Review"

// defaultTopicCount caps how many placeholder topics are synthesized
// when the user gives none.
const defaultTopicCount = 5

// buildSchedule distributes total study hours across the days before
// the exam. Greedy single pass: hours are split evenly per topic, days
// are walked forward from tomorrow, and each day goes wholly to the
// current topic if its remaining budget covers a full day, else the day
// is marked "(finish)" and the rotation advances. Topics cycle if they
// run out before the days do. No rebalancing once assigned.
func buildSchedule(topics []string, daysUntilExam int, hoursPerDay float64, now time.Time) []StudySession {
	hoursPerTopic := float64(daysUntilExam) * hoursPerDay / float64(len(topics))
	start := dates.StartOfDay(now.AddDate(0, 0, 1))

	schedule := make([]StudySession, 0, daysUntilExam)
	topicIdx := 0
	onTopic := 0.0

	for day := 0; day < daysUntilExam; day++ {
		topic := topics[topicIdx%len(topics)]
		session := StudySession{
			Day:   day + 1,
			Date:  start.AddDate(0, 0, day),
			Hours: hoursPerDay,
		}
		if hoursPerDay <= hoursPerTopic-onTopic {
			session.Topic = topic
			onTopic += hoursPerDay
		} else {
			session.Topic = topic + " (finish)"
			onTopic = 0
			topicIdx++
		}
		schedule = append(schedule, session)

		if onTopic >= hoursPerTopic {
			topicIdx++
			onTopic = 0
		}
	}

	schedule[len(schedule)-1].Topic = FinalReviewTopic
	return schedule
}

// placeholderTopics synthesizes generic topics when none were given:
// one per day, at most defaultTopicCount.
func placeholderTopics(daysUntilExam int) []string {
	n := min(defaultTopicCount, daysUntilExam)
	topics := make([]string, n)
	for i := range topics {
		topics[i] = fmt.Sprintf("Topic %d", i+1)
	}
	return topics
}
