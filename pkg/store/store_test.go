package store

import (
	"os"
	"testing"

	"github.com/stefanpenner/habitquest/pkg/goal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	return s
}

func TestNewStoreSeedsSampleGoal(t *testing.T) {
	s := setupTestStore(t)

	goals := s.ListGoals()
	require.Len(t, goals, 1)
	assert.Equal(t, goal.SampleGoalID, goals[0].ID)
	assert.Equal(t, goal.SampleTitle, goals[0].Title)
	assert.InDelta(t, 1.0/6.0, goals[0].Progress, 1e-9)
	assert.Equal(t, "5 × 5 km", goals[0].NextStep())
}

func TestGetGoal(t *testing.T) {
	s := setupTestStore(t)

	g, err := s.GetGoal("g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", g.ID)

	_, err = s.GetGoal("nope")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestAddGoalDuplicate(t *testing.T) {
	s := setupTestStore(t)

	err := s.AddGoal(goal.SampleGoal("g1"))
	assert.ErrorIs(t, err, ErrDuplicateGoal)
	assert.Equal(t, 1, s.Count())

	require.NoError(t, s.AddGoal(goal.SampleGoal("g2")))
	assert.Equal(t, 2, s.Count())
}

func TestAddDemoGoal(t *testing.T) {
	s := setupTestStore(t)
	original, err := s.GetGoal("g1")
	require.NoError(t, err)

	seen := map[string]bool{"g1": true}
	for i := 0; i < 3; i++ {
		before := s.Count()
		g, err := s.AddDemoGoal()
		require.NoError(t, err)

		assert.Equal(t, before+1, s.Count())
		assert.False(t, seen[g.ID], "id %s reused", g.ID)
		seen[g.ID] = true

		assert.Equal(t, original.Title, g.Title)
		assert.Equal(t, original.Progress, g.Progress)
		assert.Equal(t, original.Milestones(), g.Milestones())
	}

	goals := s.ListGoals()
	assert.Equal(t, "g1", goals[0].ID)
}

func TestListGoalsIsACopy(t *testing.T) {
	s := setupTestStore(t)

	goals := s.ListGoals()
	goals[0] = goal.SampleGoal("other")

	g, err := s.GetGoal("g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", g.ID)
}

func TestTemplateFromDisk(t *testing.T) {
	dir := t.TempDir()
	content := `---
title: Read more
milestones:
  - id: b1
    title: First book
    state: reached
  - id: b2
    title: Second book
    state: reached
  - id: b3
    title: Third book
    state: active
  - id: b4
    title: Fourth book
---

Pick anything with fewer than 300 pages.
`
	require.NoError(t, os.WriteFile(dir+"/template.md", []byte(content), 0644))

	s, err := NewStore(dir)
	require.NoError(t, err)

	g, err := s.GetGoal("g1")
	require.NoError(t, err)
	assert.Equal(t, "Read more", g.Title)
	assert.InDelta(t, 0.5, g.Progress, 1e-9)
	assert.Equal(t, "Third book", g.NextStep())
	assert.Contains(t, g.Description, "fewer than 300 pages")
	assert.Equal(t, s.TemplatePath(), s.Template().FilePath)
}

func TestBrokenTemplateFailsStore(t *testing.T) {
	dir := t.TempDir()
	content := "---\ntitle: x\nmilestones:\n  - id: a\n    state: locked\n  - id: b\n    state: reached\n---\n"
	require.NoError(t, os.WriteFile(dir+"/template.md", []byte(content), 0644))

	_, err := NewStore(dir)
	assert.ErrorIs(t, err, goal.ErrInvalidProgression)
}

func TestSaveAndReloadTemplate(t *testing.T) {
	s := setupTestStore(t)

	tmpl := DefaultTemplate()
	tmpl.Title = "Marathon: advanced"
	tmpl.Milestones[1].State = "reached"
	tmpl.Milestones[2].State = "active"
	require.NoError(t, s.SaveTemplate(tmpl))

	_, err := os.Stat(s.TemplatePath())
	require.NoError(t, err)

	reloaded, err := s.ReloadTemplate()
	require.NoError(t, err)
	assert.Equal(t, "Marathon: advanced", reloaded.Title)

	// Existing goals keep the template they were built from
	g1, err := s.GetGoal("g1")
	require.NoError(t, err)
	assert.Equal(t, goal.SampleTitle, g1.Title)

	demo, err := s.AddDemoGoal()
	require.NoError(t, err)
	assert.Equal(t, "Marathon: advanced", demo.Title)
	assert.InDelta(t, 2.0/6.0, demo.Progress, 1e-9)
}

func TestSaveTemplateRejectsInvalid(t *testing.T) {
	s := setupTestStore(t)

	tmpl := DefaultTemplate()
	tmpl.Milestones[4].State = "reached"
	assert.ErrorIs(t, s.SaveTemplate(tmpl), goal.ErrInvalidProgression)

	_, err := os.Stat(s.TemplatePath())
	assert.True(t, os.IsNotExist(err))
}

func TestCountComplete(t *testing.T) {
	s := setupTestStore(t)
	assert.Equal(t, 0, s.CountComplete())

	ms := goal.SampleMilestones()
	for i := range ms {
		ms[i].State = goal.StateReached
	}
	done, err := goal.New("done", "Done", "", ms)
	require.NoError(t, err)
	require.NoError(t, s.AddGoal(done))

	assert.Equal(t, 1, s.CountComplete())
}
