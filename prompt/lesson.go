package prompt

import (
	"fmt"

	"github.com/Luciano655dev/HobbyASAP/models"
)

// LessonParams carries the validated inputs for a lesson prompt.
type LessonParams struct {
	Hobby string
	Level string
	Kind  models.LessonKind
	Topic string
}

// Lesson returns the user prompt for generating one lesson.
func Lesson(params LessonParams) string {
	label := "IN DEPTH (explanation + how to do it)"
	if params.Kind == models.LessonMasterclass {
		label = "MASTERCLASS (big picture + structured)"
	}

	return fmt.Sprintf(`
You are HobbyASAP, an assistant that creates ultra clear, practical, COURSE-LIKE lessons for any hobby.

Task:
Create ONE %s lesson for this hobby and topic:

- Hobby: %q
- User level: %q
- Topic / focus: %q

You MUST return valid JSON that matches EXACTLY this structure (keys, nesting and types):

%s

Required adaptations:
- "kind" must be exactly %q.
- "hobby" must be exactly %q.
- "level" must be exactly %q.
- "topic" should restate the topic in a natural short phrase.
- "title" should sound like a chapter of a paid course (clear + attractive).
- "summary" must explain in 2–3 sentences what the learner will understand or be able to do.

Content rules:
- Aim for a rich answer (~800–1200 words total).
- Each "sections" item must feel like a mini chapter:
  - "heading": short and clear.
  - "body": 4–8 full sentences, concrete and beginner-friendly.
  - "tips" and "examples" should be actionable, not generic.
- "practiceIdeas": 4–8 specific drills or exercises with clear time or reps.
- "recommendedResources":
  - 2–6 items.
  - Use a mix of "video", "article", "book", "course", "community", or "search" types where it makes sense.
  - "note" must say WHY and WHEN to use that resource (1–2 sentences).

Important:
- Output JSON ONLY. No markdown, no backticks, no explanations.
- Do NOT include comments.
- Do NOT include trailing commas.
- Use only valid JSON values.
- Do not leave placeholders like "string" or "todo".
`, label, params.Hobby, params.Level, params.Topic,
		mustMarshalIndent(lessonExample),
		params.Kind, params.Hobby, params.Level)
}
