package prompt

import (
	"encoding/json"

	"github.com/Luciano655dev/HobbyASAP/models"
)

func intPtr(n int) *int { return &n }

// planExample is the worked structure embedded in the plan prompt. The model
// is told to match its keys, nesting and types exactly; "string" values are
// placeholders it must replace.
var planExample = models.Plan{
	Hobby: "guitar",
	Level: "complete beginner",
	Icon:  "🎸",
	Theme: models.Theme{From: "#10b981ff", To: "#020617ff"},
	Sections: []models.Section{
		{
			ID:          "intro-1",
			Kind:        models.SectionIntro,
			Title:       "Welcome to guitar",
			Description: "Short friendly summary of what this hobby is about.",
			Intro: &models.IntroSection{
				Body:         "string",
				BulletPoints: []string{"string"},
			},
		},
		{
			ID:          "roadmap-1",
			Kind:        models.SectionRoadmap,
			Title:       "Big milestones",
			Description: "4–7 big steps in the journey.",
			Roadmap: &models.RoadmapSection{
				Milestones: []string{"string"},
				Phases: []models.Phase{
					{Name: "string", Goal: "string", Focus: []string{"string"}},
				},
			},
		},
		{
			ID:          "today-1",
			Kind:        models.SectionToday,
			Title:       "Today’s tiny steps",
			Description: "Very small tasks you can do right now.",
			Today: &models.TodaySection{
				Items: []models.TaskItem{
					{Label: "string", Minutes: intPtr(20), XP: intPtr(10)},
				},
			},
		},
		{
			ID:          "checklist-1",
			Kind:        models.SectionChecklist,
			Title:       "Core practice",
			Description: "Repeatable sessions that build skill.",
			Checklist: &models.ChecklistSection{
				Items: []models.TaskItem{
					{Label: "string", Minutes: intPtr(40), XP: intPtr(15)},
				},
			},
		},
		{
			ID:          "weekly-1",
			Kind:        models.SectionWeekly,
			Title:       "Weekly plan",
			Description: "Week-by-week structure.",
			Weekly: &models.WeeklySection{
				Weeks: []models.Week{
					{Week: 1, Focus: "string", Practice: []string{"string"}, Goal: "string"},
				},
			},
		},
		{
			ID:          "resources-1",
			Kind:        models.SectionResources,
			Title:       "Helpful resources",
			Description: "Links that match the level.",
			Resources: &models.ResourcesSection{
				Resources: []models.Resource{
					{Title: "string", Type: models.ResourceVideo, URL: "string", Note: "string"},
				},
			},
		},
		{
			ID:          "gear-1",
			Kind:        models.SectionGear,
			Title:       "Gear suggestions",
			Description: "What to buy now vs later.",
			Gear: &models.GearSection{
				Starter:         []string{"string"},
				NiceToHave:      []string{"string"},
				MoneySavingTips: []string{"string"},
			},
		},
		{
			ID:          "tips-1",
			Kind:        models.SectionTips,
			Title:       "Common mistakes",
			Description: "Traps to avoid.",
			Tips: &models.TipsSection{
				Mistakes: []models.Mistake{{Mistake: "string", Fix: "string"}},
			},
		},
		{
			ID:          "advanced-1",
			Kind:        models.SectionAdvanced,
			Title:       "Advanced path",
			Description: "Options once you are solid.",
			Advanced: &models.AdvancedSection{
				Directions:    []string{"string"},
				LongTermGoals: []string{"string"},
			},
		},
	},
}

var lessonExample = models.Lesson{
	Kind:                 models.LessonMasterclass,
	Title:                "Masterclass – Clean Alternate Picking",
	Topic:                "alternate picking for guitar",
	Goal:                 "Help the learner understand and practice clean alternate picking at slow to medium speeds without tension.",
	EstimatedTimeMinutes: 40,
	Level:                "some experience",
	Hobby:                "electric guitar",
	Summary:              "This masterclass breaks alternate picking into posture, motion, rhythm, and progressive drills so the player can build clean and relaxed technique.",
	Sections: []models.LessonSection{
		{
			Heading: "Why alternate picking matters",
			Body:    "Alternate picking uses a consistent down-up motion so you do not have to think about which direction your pick is moving on every note. It makes your playing more efficient and gives you a stable base for faster lines.",
			Tips: []string{
				"Think of your hand as a metronome that never stops moving.",
				"Focus on smoothness before speed.",
			},
		},
		{
			Heading: "Posture and pick grip",
			Body:    "Hold the pick between the side of your index finger and the pad of your thumb. Keep your wrist relaxed and let the motion come from a small wrist movement, not the whole arm.",
			Examples: []string{
				"Try resting your forearm lightly on the guitar body.",
				"Use a medium pick to avoid getting stuck in the strings.",
			},
		},
	},
	PracticeIdeas: []string{
		"5 minutes: mute the strings and play constant down-up strokes at 60 BPM.",
		"10 minutes: play one note per beat on a single string, then two notes per beat.",
		"10 minutes: simple 4-note patterns across two strings while keeping the motion consistent.",
	},
	RecommendedResources: []models.Resource{
		{
			Title: "Alternate picking basics – YouTube search",
			Type:  models.ResourceSearch,
			URL:   "https://www.youtube.com/results?search_query=beginner+alternate+picking+guitar",
			Note:  "Use this after you try the drills to see how teachers hold their pick and move their wrist.",
		},
	},
}

func mustMarshalIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// the examples are fixed values; a marshal failure is a programming error
		panic(err)
	}
	return string(data)
}
