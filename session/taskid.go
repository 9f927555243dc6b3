package session

import "fmt"

// TaskID derives a task's identity from its owning section, position and
// label. Determinism is the point: the same plan and completion set always
// produce the same ids, so no separate task database is needed. Editing a
// label intentionally changes the identity.
func TaskID(sectionID string, index int, label string) string {
	return fmt.Sprintf("%s::%d::%s", sectionID, index, label)
}

// LessonTaskID derives the id for one practice idea of a lesson, using the
// lesson's position in the run as its section.
func LessonTaskID(lessonIndex, practiceIndex int, idea string) string {
	return TaskID(fmt.Sprintf("lesson-%d", lessonIndex), practiceIndex, idea)
}
