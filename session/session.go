// Package session is the client-side bookkeeping for one learning "run":
// the generated plan, completed tasks, streak, lessons and asked questions.
// State lives entirely on the user's device in a single JSON file; the server
// never holds a copy.
package session

import (
	"time"

	"github.com/Luciano655dev/HobbyASAP/models"
	"github.com/google/uuid"
)

// StreakState tracks consecutive days with at least one completed task.
type StreakState struct {
	Current        int    `json:"current"`
	Longest        int    `json:"longest"`
	LastActiveDate string `json:"lastActiveDate,omitempty"` // YYYY-MM-DD, UTC
}

// QARecord is one asked question with its answer, suggested tasks and
// optional follow-up topic.
type QARecord struct {
	Question     string            `json:"question"`
	Answer       string            `json:"answer"`
	Tasks        []models.TaskItem `json:"tasks,omitempty"`
	InDepthTopic string            `json:"inDepthTopic,omitempty"`
}

// Snapshot is the full persisted state of one run. It is overwritten as a
// whole on every state-affecting change.
type Snapshot struct {
	ID               string          `json:"id"`
	CreatedAt        time.Time       `json:"createdAt"`
	Hobby            string          `json:"hobby"`
	Level            string          `json:"level"`
	Icon             string          `json:"icon,omitempty"`
	Plan             *models.Plan    `json:"plan"`
	CompletedTaskIDs []string        `json:"completedTaskIds"`
	Streak           StreakState     `json:"streak"`
	Lessons          []models.Lesson `json:"lessons,omitempty"`
	Questions        []QARecord      `json:"questions,omitempty"`
}

// NewSnapshot starts a run for a freshly generated plan.
func NewSnapshot(plan *models.Plan) *Snapshot {
	return &Snapshot{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		Hobby:            plan.Hobby,
		Level:            plan.Level,
		Icon:             plan.Icon,
		Plan:             plan,
		CompletedTaskIDs: []string{},
	}
}

// IsCompleted reports whether the given task id is in the completed set.
func (s *Snapshot) IsCompleted(taskID string) bool {
	for _, id := range s.CompletedTaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}

// ToggleTask flips a task's completion state and returns whether it is now
// completed. Checking a task drives the streak ratchet; unchecking never
// touches streak state.
func (s *Snapshot) ToggleTask(taskID string) bool {
	for i, id := range s.CompletedTaskIDs {
		if id == taskID {
			s.CompletedTaskIDs = append(s.CompletedTaskIDs[:i], s.CompletedTaskIDs[i+1:]...)
			return false
		}
	}
	s.CompletedTaskIDs = append(s.CompletedTaskIDs, taskID)
	s.Streak = s.Streak.onTaskChecked(time.Now().UTC())
	return true
}

// AddLesson appends a generated lesson to the run.
func (s *Snapshot) AddLesson(lesson models.Lesson) {
	s.Lessons = append(s.Lessons, lesson)
}

// AddQuestion appends an answered question to the run.
func (s *Snapshot) AddQuestion(q QARecord) {
	s.Questions = append(s.Questions, q)
}

// History returns the run's Q&A pairs in ask-endpoint shape.
func (s *Snapshot) History() []models.QAItem {
	items := make([]models.QAItem, 0, len(s.Questions))
	for _, q := range s.Questions {
		items = append(items, models.QAItem{Question: q.Question, Answer: q.Answer})
	}
	return items
}
