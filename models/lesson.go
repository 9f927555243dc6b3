package models

// LessonKind distinguishes the two lesson formats.
type LessonKind string

const (
	LessonMasterclass LessonKind = "masterclass"
	LessonInDepth     LessonKind = "inDepth"
)

// ValidLessonKind reports whether k is one of the two allowed lesson kinds.
func ValidLessonKind(k LessonKind) bool {
	return k == LessonMasterclass || k == LessonInDepth
}

// LessonSection is one mini chapter of a lesson.
type LessonSection struct {
	Heading  string   `json:"heading"`
	Body     string   `json:"body"`
	Tips     []string `json:"tips,omitempty"`
	Examples []string `json:"examples,omitempty"`
}

// Lesson is a generated deep dive into one topic of a hobby.
type Lesson struct {
	Kind                 LessonKind      `json:"kind"`
	Title                string          `json:"title"`
	Topic                string          `json:"topic"`
	Goal                 string          `json:"goal"`
	EstimatedTimeMinutes int             `json:"estimatedTimeMinutes"`
	Level                string          `json:"level"`
	Hobby                string          `json:"hobby"`
	Summary              string          `json:"summary"`
	Sections             []LessonSection `json:"sections"`
	PracticeIdeas        []string        `json:"practiceIdeas"`
	RecommendedResources []Resource      `json:"recommendedResources,omitempty"`
}
