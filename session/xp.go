package session

import "github.com/Luciano655dev/HobbyASAP/models"

const (
	// DefaultTaskXP is awarded when a task carries no explicit xp value.
	DefaultTaskXP = 10
	// LessonPracticeXP is awarded per completed lesson practice idea.
	LessonPracticeXP = 10
	// XPPerLevel is the width of one experience level.
	XPPerLevel = 120
)

// XPStats is the derived experience state for a run.
type XPStats struct {
	TotalXP              int
	LevelNumber          int
	XPInLevel            int
	XPForNextLevel       int
	LevelProgressPercent int
	LevelLabel           string
}

// TotalXP recomputes experience from the current completion state. It is
// derived, not accumulated, so it stays consistent with the completed set
// even after tasks are unchecked.
func (s *Snapshot) TotalXP() int {
	total := 0
	completed := make(map[string]bool, len(s.CompletedTaskIDs))
	for _, id := range s.CompletedTaskIDs {
		completed[id] = true
	}

	if s.Plan != nil {
		for _, section := range s.Plan.Sections {
			var items []models.TaskItem
			switch section.Kind {
			case models.SectionToday:
				items = section.Today.Items
			case models.SectionChecklist:
				items = section.Checklist.Items
			default:
				continue
			}
			for i, item := range items {
				if !completed[TaskID(section.ID, i, item.Label)] {
					continue
				}
				if item.XP != nil {
					total += *item.XP
				} else {
					total += DefaultTaskXP
				}
			}
		}
	}

	for li, lesson := range s.Lessons {
		for pi, idea := range lesson.PracticeIdeas {
			if completed[LessonTaskID(li, pi, idea)] {
				total += LessonPracticeXP
			}
		}
	}

	return total
}

// Stats derives the full experience summary for a run.
func (s *Snapshot) Stats() XPStats {
	return statsForXP(s.TotalXP())
}

// GlobalStats sums experience across saved runs.
func GlobalStats(snapshots []*Snapshot) XPStats {
	total := 0
	for _, s := range snapshots {
		total += s.TotalXP()
	}
	return statsForXP(total)
}

func statsForXP(total int) XPStats {
	level := total/XPPerLevel + 1
	inLevel := total - (level-1)*XPPerLevel

	percent := inLevel * 100 / XPPerLevel
	if percent > 100 {
		percent = 100
	}

	return XPStats{
		TotalXP:              total,
		LevelNumber:          level,
		XPInLevel:            inLevel,
		XPForNextLevel:       XPPerLevel,
		LevelProgressPercent: percent,
		LevelLabel:           levelLabel(level),
	}
}

func levelLabel(level int) string {
	switch level {
	case 1:
		return "New explorer"
	case 2:
		return "Getting consistent"
	case 3:
		return "Serious hobbyist"
	case 4:
		return "Hobby grinder"
	default:
		return "Quest master"
	}
}
