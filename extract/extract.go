// Package extract recovers typed values from raw model completions. Models
// reliably wrap otherwise-valid JSON in code fences or commentary despite
// instructions, so extraction trims that noise and parses the substring
// between the first "{" and the last "}". Nested unrelated braces outside the
// intended object are an accepted limitation, not something this package
// tries to handle.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Luciano655dev/HobbyASAP/models"
)

// Reason classifies why extraction failed.
type Reason string

const (
	// ReasonNoJSON means the text contains no {...} pair at all.
	ReasonNoJSON Reason = "no_json_found"
	// ReasonParse means the braced substring is not valid JSON.
	ReasonParse Reason = "parse_error"
	// ReasonSchema means the JSON parsed but misses required fields.
	ReasonSchema Reason = "schema_violation"
)

// Error is a typed extraction failure. Detail is for server-side logs only
// and must never reach the client.
type Error struct {
	Reason Reason
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("extraction failed (%s): %s", e.Reason, e.Detail)
}

var fenceRe = regexp.MustCompile("(?i)```[a-z]*")

// CleanJSON strips formatting noise and returns the substring between the
// first "{" and the last "}" of raw, or a ReasonNoJSON error.
func CleanJSON(raw string) (string, *Error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last < first {
		return "", &Error{Reason: ReasonNoJSON, Detail: "no JSON object braces in model output"}
	}

	return text[first : last+1], nil
}

// Plan extracts and weakly validates a learning plan.
func Plan(raw string) (*models.Plan, *Error) {
	jsonStr, exErr := CleanJSON(raw)
	if exErr != nil {
		return nil, exErr
	}

	var plan models.Plan
	if err := json.Unmarshal([]byte(jsonStr), &plan); err != nil {
		return nil, &Error{Reason: ReasonParse, Detail: err.Error()}
	}

	if strings.TrimSpace(plan.Hobby) == "" {
		return nil, &Error{Reason: ReasonSchema, Detail: "plan is missing hobby"}
	}
	if len(plan.Sections) == 0 {
		return nil, &Error{Reason: ReasonSchema, Detail: "plan has no sections"}
	}

	return &plan, nil
}

// Lesson extracts and weakly validates a lesson.
func Lesson(raw string) (*models.Lesson, *Error) {
	jsonStr, exErr := CleanJSON(raw)
	if exErr != nil {
		return nil, exErr
	}

	var lesson models.Lesson
	if err := json.Unmarshal([]byte(jsonStr), &lesson); err != nil {
		return nil, &Error{Reason: ReasonParse, Detail: err.Error()}
	}

	if !models.ValidLessonKind(lesson.Kind) {
		return nil, &Error{Reason: ReasonSchema, Detail: fmt.Sprintf("lesson has invalid kind %q", lesson.Kind)}
	}
	if strings.TrimSpace(lesson.Title) == "" {
		return nil, &Error{Reason: ReasonSchema, Detail: "lesson is missing title"}
	}
	if len(lesson.Sections) == 0 {
		return nil, &Error{Reason: ReasonSchema, Detail: "lesson has no sections"}
	}

	if lesson.PracticeIdeas == nil {
		lesson.PracticeIdeas = []string{}
	}

	return &lesson, nil
}

// Answer extracts and normalizes a question answer. Tasks are coerced to an
// empty list when absent and a blank inDepthTopic becomes empty.
func Answer(raw string) (*models.Answer, *Error) {
	jsonStr, exErr := CleanJSON(raw)
	if exErr != nil {
		return nil, exErr
	}

	// Tasks and inDepthTopic are decoded leniently: a missing or
	// wrongly-typed field degrades to its zero shape instead of failing the
	// whole answer.
	var wire struct {
		Answer       string          `json:"answer"`
		Tasks        json.RawMessage `json:"tasks"`
		InDepthTopic json.RawMessage `json:"inDepthTopic"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return nil, &Error{Reason: ReasonParse, Detail: err.Error()}
	}

	answer := models.Answer{
		Answer: strings.TrimSpace(wire.Answer),
		Tasks:  []models.TaskItem{},
	}
	if answer.Answer == "" {
		return nil, &Error{Reason: ReasonSchema, Detail: "answer text is missing or empty"}
	}

	if len(wire.Tasks) > 0 {
		var tasks []models.TaskItem
		if err := json.Unmarshal(wire.Tasks, &tasks); err == nil && tasks != nil {
			answer.Tasks = tasks
		}
	}
	if len(wire.InDepthTopic) > 0 {
		var topic string
		if err := json.Unmarshal(wire.InDepthTopic, &topic); err == nil {
			answer.InDepthTopic = strings.TrimSpace(topic)
		}
	}

	return &answer, nil
}
