package prompt

import (
	"fmt"
	"strings"

	"github.com/Luciano655dev/HobbyASAP/models"
)

// HistoryWindow bounds how many prior question/answer pairs are serialized
// into the ask context, regardless of how many the client supplies.
const HistoryWindow = 5

// AskSystem returns the system prompt for the question-answering endpoint.
// It forces JSON output with answer + tasks + inDepthTopic.
func AskSystem(lang Language) string {
	return "You are HobbyASAP Coach, an expert hobby mentor.\n" +
		"- You answer questions using ONLY the provided plan, lessons, and Q&A history.\n" +
		"- Explain in clear, simple language and give concrete, actionable steps.\n" +
		"- You are allowed to add extra tiny practice tasks that fit the plan, but it is not obligatory.\n" +
		"- If the user seems to want more depth on a specific topic, you may suggest an inDepthTopic.\n\n" +
		"You MUST respond with VALID JSON ONLY (no markdown, no prose around it) in this exact shape:\n" +
		`{
  "answer": "string with your full explanation in natural language",
  "tasks": [
    {
      "label": "short, concrete practice task",
      "minutes": 15,
      "xp": 10
    }
  ],
  "inDepthTopic": "short topic string or null if not needed"
}` + "\n" +
		"- tasks can be an empty array.\n" +
		"- inDepthTopic can be null.\n" +
		"- Do NOT add any extra top-level keys.\n" +
		"LANGUAGE RULE:\n" +
		"- If LANGUAGE = 'pt', write the answer, task labels and inDepthTopic ONLY in Brazilian Portuguese.\n" +
		"- If LANGUAGE = 'en', write them ONLY in English.\n" +
		fmt.Sprintf("LANGUAGE: %s\n", lang)
}

// Ask returns the user prompt for answering one question against the supplied
// plan, lessons and bounded Q&A history.
func Ask(question string, plan *models.Plan, lessons []models.Lesson, history []models.QAItem) string {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	lessonsSummary := LessonsSummary(lessons)
	if lessonsSummary == "" {
		lessonsSummary = "(no extra lessons yet)"
	}
	historySummary := HistorySummary(history)
	if historySummary == "" {
		historySummary = "(no previous questions)"
	}

	return "Here is the current hobby plan:\n\n" +
		PlanSummary(plan) + "\n\n" +
		"Here are masterclasses / in-depth lessons (if any):\n\n" +
		lessonsSummary + "\n\n" +
		"Here is recent Q&A history for this user:\n\n" +
		historySummary + "\n\n" +
		"Now answer this NEW question based ONLY on the content above:\n" +
		"Q: " + strings.TrimSpace(question) + "\n\n" +
		"Remember to return valid JSON with fields: answer, tasks, inDepthTopic."
}

// PlanSummary flattens a plan into a compact text block so the model can
// answer from its structure without the raw JSON.
func PlanSummary(plan *models.Plan) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Hobby: %s\nLevel: %s\nIcon: %s", plan.Hobby, plan.Level, plan.Icon))

	for _, section := range plan.Sections {
		parts = append(parts, fmt.Sprintf("\n=== Section: %s – %s ===",
			strings.ToUpper(string(section.Kind)), section.Title))
		if section.Description != "" {
			parts = append(parts, "Description: "+section.Description)
		}

		switch section.Kind {
		case models.SectionIntro:
			parts = append(parts, "Body: "+section.Intro.Body)
			if bp := head(section.Intro.BulletPoints, 6); len(bp) > 0 {
				parts = append(parts, "Key points:\n"+bulleted(bp))
			}

		case models.SectionRoadmap:
			if milestones := head(section.Roadmap.Milestones, 10); len(milestones) > 0 {
				parts = append(parts, "Milestones:\n"+numbered(milestones))
			}
			for _, p := range headPhases(section.Roadmap.Phases, 5) {
				parts = append(parts, fmt.Sprintf("Phase: %s\n  Goal: %s\n  Focus: %s",
					p.Name, p.Goal, strings.Join(head(p.Focus, 6), ", ")))
			}

		case models.SectionToday:
			parts = append(parts, "Today tasks:\n"+taskLines(section.Today.Items, 8))

		case models.SectionChecklist:
			parts = append(parts, "Checklist items:\n"+taskLines(section.Checklist.Items, 10))

		case models.SectionWeekly:
			weeks := section.Weekly.Weeks
			if len(weeks) > 6 {
				weeks = weeks[:6]
			}
			for _, w := range weeks {
				parts = append(parts, fmt.Sprintf("Week %d: focus=%s; goal=%s; practice=%s",
					w.Week, w.Focus, w.Goal, strings.Join(head(w.Practice, 6), ", ")))
			}

		case models.SectionResources:
			resources := section.Resources.Resources
			if len(resources) > 8 {
				resources = resources[:8]
			}
			var lines []string
			for _, r := range resources {
				lines = append(lines, fmt.Sprintf("- %s – %s – %s", r.Title, r.Type, r.Note))
			}
			parts = append(parts, "Resources (title – type – note):\n"+strings.Join(lines, "\n"))

		case models.SectionGear:
			parts = append(parts, "Starter gear: "+strings.Join(head(section.Gear.Starter, 6), ", "))
			parts = append(parts, "Nice to have: "+strings.Join(head(section.Gear.NiceToHave, 6), ", "))
			parts = append(parts, "Money saving tips: "+strings.Join(head(section.Gear.MoneySavingTips, 6), ", "))

		case models.SectionTips:
			mistakes := section.Tips.Mistakes
			if len(mistakes) > 8 {
				mistakes = mistakes[:8]
			}
			var lines []string
			for _, m := range mistakes {
				lines = append(lines, fmt.Sprintf("- %s | Fix: %s", m.Mistake, m.Fix))
			}
			parts = append(parts, "Common mistakes:\n"+strings.Join(lines, "\n"))

		case models.SectionAdvanced:
			parts = append(parts, "Advanced directions: "+strings.Join(head(section.Advanced.Directions, 6), ", "))
			parts = append(parts, "Long term goals: "+strings.Join(head(section.Advanced.LongTermGoals, 6), ", "))
		}
	}

	return strings.Join(parts, "\n")
}

// LessonsSummary flattens prior lessons for context. Returns "" when there
// are none.
func LessonsSummary(lessons []models.Lesson) string {
	if len(lessons) == 0 {
		return ""
	}

	var parts []string
	for i, lesson := range lessons {
		parts = append(parts, fmt.Sprintf("\n=== Lesson %d: %s – %s ===",
			i+1, strings.ToUpper(string(lesson.Kind)), lesson.Title))
		parts = append(parts, "Topic: "+lesson.Topic)
		parts = append(parts, "Summary: "+lesson.Summary)
		parts = append(parts, fmt.Sprintf("Estimated time: %d min", lesson.EstimatedTimeMinutes))

		sections := lesson.Sections
		if len(sections) > 5 {
			sections = sections[:5]
		}
		for _, s := range sections {
			parts = append(parts, fmt.Sprintf("Section: %s\n  Body: %s\n  Tips: %s\n  Examples: %s",
				s.Heading, s.Body,
				strings.Join(head(s.Tips, 4), ", "),
				strings.Join(head(s.Examples, 4), ", ")))
		}

		if len(lesson.PracticeIdeas) > 0 {
			parts = append(parts, "Practice ideas: "+strings.Join(head(lesson.PracticeIdeas, 6), " | "))
		}
	}

	return strings.Join(parts, "\n")
}

// HistorySummary renders prior Q&A pairs. Returns "" when there are none.
func HistorySummary(history []models.QAItem) string {
	if len(history) == 0 {
		return ""
	}

	var parts []string
	for i, item := range history {
		parts = append(parts, fmt.Sprintf("Q%d: %s\nA%d: %s", i+1, item.Question, i+1, item.Answer))
	}
	return strings.Join(parts, "\n\n")
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func headPhases(phases []models.Phase, n int) []models.Phase {
	if len(phases) > n {
		return phases[:n]
	}
	return phases
}

func taskLines(items []models.TaskItem, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	var lines []string
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s (minutes: %s, xp: %s)",
			it.Label, intOrQuestion(it.Minutes), intOrQuestion(it.XP)))
	}
	return strings.Join(lines, "\n")
}

func intOrQuestion(n *int) string {
	if n == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *n)
}

func bulleted(items []string) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

func numbered(items []string) string {
	var lines []string
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, "\n")
}
