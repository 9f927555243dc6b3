package session

import (
	"path/filepath"
	"testing"

	"github.com/Luciano655dev/HobbyASAP/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func testPlan() *models.Plan {
	return &models.Plan{
		Hobby: "chess",
		Level: "complete beginner",
		Icon:  "♟",
		Theme: models.Theme{From: "#111111", To: "#222222"},
		Sections: []models.Section{
			{
				ID:    "today-1",
				Kind:  models.SectionToday,
				Title: "Today",
				Today: &models.TodaySection{
					Items: []models.TaskItem{
						{Label: "learn how the knight moves", Minutes: intPtr(15), XP: intPtr(15)},
						{Label: "play one game", Minutes: intPtr(30)},
					},
				},
			},
			{
				ID:    "check-1",
				Kind:  models.SectionChecklist,
				Title: "Practice",
				Checklist: &models.ChecklistSection{
					Items: []models.TaskItem{
						{Label: "solve five tactics puzzles", XP: intPtr(20)},
					},
				},
			},
			{
				ID:    "intro-1",
				Kind:  models.SectionIntro,
				Title: "Welcome",
				Intro: &models.IntroSection{Body: "Chess rewards patterns."},
			},
		},
	}
}

func TestTaskID_Deterministic(t *testing.T) {
	a := TaskID("today-1", 0, "play one game")
	b := TaskID("today-1", 0, "play one game")
	assert.Equal(t, a, b)
	assert.Equal(t, "today-1::0::play one game", a)

	assert.NotEqual(t, a, TaskID("today-1", 1, "play one game"))
	assert.NotEqual(t, a, TaskID("today-2", 0, "play one game"))
	assert.NotEqual(t, a, TaskID("today-1", 0, "play two games"))
}

func TestTaskID_SameCompletionSetSameState(t *testing.T) {
	plan := testPlan()

	render := func() map[string]bool {
		ids := make(map[string]bool)
		for _, section := range plan.Sections {
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
				ids[TaskID(section.ID, i, item.Label)] = true
			}
		}
		return ids
	}

	assert.Equal(t, render(), render())
}

func TestTotalXP_RecomputedFromCompletionState(t *testing.T) {
	snapshot := NewSnapshot(testPlan())
	assert.Zero(t, snapshot.TotalXP())

	// explicit xp value
	snapshot.ToggleTask(TaskID("today-1", 0, "learn how the knight moves"))
	assert.Equal(t, 15, snapshot.TotalXP())

	// default xp when unspecified
	snapshot.ToggleTask(TaskID("today-1", 1, "play one game"))
	assert.Equal(t, 15+DefaultTaskXP, snapshot.TotalXP())

	snapshot.ToggleTask(TaskID("check-1", 0, "solve five tactics puzzles"))
	assert.Equal(t, 15+DefaultTaskXP+20, snapshot.TotalXP())

	// undo stays consistent
	snapshot.ToggleTask(TaskID("check-1", 0, "solve five tactics puzzles"))
	assert.Equal(t, 15+DefaultTaskXP, snapshot.TotalXP())
}

func TestTotalXP_CountsLessonPractice(t *testing.T) {
	snapshot := NewSnapshot(testPlan())
	snapshot.AddLesson(models.Lesson{
		Kind:          models.LessonInDepth,
		Title:         "Knight endgames",
		Sections:      []models.LessonSection{{Heading: "H", Body: "B"}},
		PracticeIdeas: []string{"set up K+N vs K and practice mating patterns"},
	})

	snapshot.ToggleTask(LessonTaskID(0, 0, "set up K+N vs K and practice mating patterns"))
	assert.Equal(t, LessonPracticeXP, snapshot.TotalXP())
}

func TestStats_Levels(t *testing.T) {
	stats := statsForXP(0)
	assert.Equal(t, 1, stats.LevelNumber)
	assert.Equal(t, "New explorer", stats.LevelLabel)

	stats = statsForXP(130)
	assert.Equal(t, 2, stats.LevelNumber)
	assert.Equal(t, 10, stats.XPInLevel)
	assert.Equal(t, "Getting consistent", stats.LevelLabel)

	stats = statsForXP(5 * XPPerLevel)
	assert.Equal(t, "Quest master", stats.LevelLabel)
}

func TestStore_SaveOverwritesById(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.json"))
	require.NoError(t, err)

	snapshot := NewSnapshot(testPlan())
	require.NoError(t, store.Save(snapshot))

	snapshot.ToggleTask(TaskID("today-1", 1, "play one game"))
	require.NoError(t, store.Save(snapshot))

	sessions := store.List()
	require.Len(t, sessions, 1)
	assert.Len(t, sessions[0].CompletedTaskIDs, 1)
}

func TestStore_BoundedEvictionOldestFirst(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.json"))
	require.NoError(t, err)

	var first *Snapshot
	for i := 0; i < MaxHistory+3; i++ {
		snapshot := NewSnapshot(testPlan())
		if first == nil {
			first = snapshot
		}
		require.NoError(t, store.Save(snapshot))
	}

	sessions := store.List()
	assert.Len(t, sessions, MaxHistory)
	assert.Nil(t, store.Get(first.ID), "oldest snapshot should be evicted")
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")

	store, err := OpenStore(path)
	require.NoError(t, err)

	snapshot := NewSnapshot(testPlan())
	snapshot.AddQuestion(QARecord{Question: "How do I improve?", Answer: "Play slow games."})
	require.NoError(t, store.Save(snapshot))

	reopened, err := OpenStore(path)
	require.NoError(t, err)

	loaded := reopened.Get(snapshot.ID)
	require.NotNil(t, loaded)
	assert.Equal(t, "chess", loaded.Hobby)
	require.Len(t, loaded.Questions, 1)
	assert.Equal(t, []models.QAItem{{Question: "How do I improve?", Answer: "Play slow games."}}, loaded.History())
}

func TestStore_DeleteAndClear(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.json"))
	require.NoError(t, err)

	a := NewSnapshot(testPlan())
	b := NewSnapshot(testPlan())
	require.NoError(t, store.Save(a))
	require.NoError(t, store.Save(b))

	require.NoError(t, store.Delete(a.ID))
	assert.Nil(t, store.Get(a.ID))
	assert.NotNil(t, store.Get(b.ID))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.List())
}

func TestDeviceID_CreatedOnceThenReused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device_id")

	id, isNew, err := DeviceID(path)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.True(t, isNew)

	again, isNew, err := DeviceID(path)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, id, again)
}
