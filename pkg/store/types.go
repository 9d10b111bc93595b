package store

import (
	"fmt"

	"github.com/stefanpenner/habitquest/pkg/goal"
)

// Template describes the goal created by the "add demo goal" action.
// It is loaded from template.md.
type Template struct {
	// Frontmatter fields
	Title      string              `yaml:"title"`
	Milestones []MilestoneTemplate `yaml:"milestones"`

	// Parsed from markdown body
	Body string `yaml:"-"`

	// Filesystem metadata (not serialized to YAML)
	FilePath string `yaml:"-"`
}

// MilestoneTemplate is one milestone entry of a Template. Its index is its
// position in the list.
type MilestoneTemplate struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	State    string `yaml:"state"`
}

// DefaultTemplate returns the built-in marathon template.
func DefaultTemplate() *Template {
	t := &Template{Title: goal.SampleTitle}
	for _, m := range goal.SampleMilestones() {
		t.Milestones = append(t.Milestones, MilestoneTemplate{
			ID:       m.ID,
			Title:    m.Title,
			Subtitle: m.Subtitle,
			State:    string(m.State),
		})
	}
	return t
}

// Build creates a goal from the template under the given ID.
func (t *Template) Build(id string) (goal.Goal, error) {
	ms := make([]goal.Milestone, 0, len(t.Milestones))
	for i, mt := range t.Milestones {
		state, err := goal.ParseState(mt.State)
		if err != nil {
			return goal.Goal{}, fmt.Errorf("milestone %d: %w", i+1, err)
		}
		ms = append(ms, goal.Milestone{
			ID:       mt.ID,
			Index:    i + 1,
			Title:    mt.Title,
			Subtitle: mt.Subtitle,
			State:    state,
		})
	}
	return goal.New(id, t.Title, t.Body, ms)
}

// Validate checks that the template builds a valid goal.
func (t *Template) Validate() error {
	_, err := t.Build("template")
	return err
}
