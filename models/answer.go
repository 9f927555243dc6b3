package models

// Answer is the model's response to a question asked against a plan. Tasks
// are optional extra practice the coach may suggest; InDepthTopic, when
// non-empty, names a topic worth a follow-up inDepth lesson.
type Answer struct {
	Answer       string     `json:"answer"`
	Tasks        []TaskItem `json:"tasks"`
	InDepthTopic string     `json:"inDepthTopic,omitempty"`
}

// QAItem is one already-answered question, fed back as context on follow-ups.
type QAItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
