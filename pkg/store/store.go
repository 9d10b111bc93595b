package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/stefanpenner/habitquest/pkg/goal"
)

var (
	ErrGoalNotFound  = errors.New("goal not found")
	ErrDuplicateGoal = errors.New("goal already exists")
)

// Repository is the read/write surface the presentation layer uses for goals.
type Repository interface {
	ListGoals() []goal.Goal
	GetGoal(id string) (goal.Goal, error)
	AddGoal(g goal.Goal) error
}

var _ Repository = (*Store)(nil)

// Store keeps the session's goals in memory. The demo template is read from
// Root/template.md when present.
type Store struct {
	Root string // e.g., ~/.local/share/habitquest

	goals    []goal.Goal
	template *Template
}

// NewStore creates a Store rooted at the given directory and seeds it with the
// template goal under goal.SampleGoalID. A missing template file falls back to
// the built-in template; a broken one is an error.
func NewStore(root string) (*Store, error) {
	s := &Store{Root: root}

	t, err := s.LoadTemplate()
	if err != nil {
		return nil, err
	}
	s.template = t

	first, err := t.Build(goal.SampleGoalID)
	if err != nil {
		return nil, fmt.Errorf("building initial goal: %w", err)
	}
	s.goals = []goal.Goal{first}
	return s, nil
}

// TemplatePath returns the path to template.md.
func (s *Store) TemplatePath() string {
	return filepath.Join(s.Root, "template.md")
}

// LoadTemplate reads and parses template.md.
func (s *Store) LoadTemplate() (*Template, error) {
	data, err := os.ReadFile(s.TemplatePath())
	if os.IsNotExist(err) {
		return DefaultTemplate(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading template.md: %w", err)
	}

	t, err := ParseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing template.md: %w", err)
	}
	t.FilePath = s.TemplatePath()
	return t, nil
}

// SaveTemplate writes template.md to disk.
func (s *Store) SaveTemplate(t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Root, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	content, err := SerializeTemplate(t)
	if err != nil {
		return fmt.Errorf("serializing template: %w", err)
	}

	t.FilePath = s.TemplatePath()
	return os.WriteFile(t.FilePath, []byte(content), 0644)
}

// ReloadTemplate re-reads template.md and uses it for later demo goals.
// Goals already in the store are not affected.
func (s *Store) ReloadTemplate() (*Template, error) {
	t, err := s.LoadTemplate()
	if err != nil {
		return nil, err
	}
	s.template = t
	return t, nil
}

// Template returns the template used for demo goals.
func (s *Store) Template() *Template {
	return s.template
}

// ListGoals returns the goals in insertion order.
func (s *Store) ListGoals() []goal.Goal {
	goals := make([]goal.Goal, len(s.goals))
	copy(goals, s.goals)
	return goals
}

// GetGoal looks up a goal by ID.
func (s *Store) GetGoal(id string) (goal.Goal, error) {
	for _, g := range s.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return goal.Goal{}, fmt.Errorf("goal %s: %w", id, ErrGoalNotFound)
}

// AddGoal appends a goal. IDs must be unique.
func (s *Store) AddGoal(g goal.Goal) error {
	if _, err := s.GetGoal(g.ID); err == nil {
		return fmt.Errorf("goal %s: %w", g.ID, ErrDuplicateGoal)
	}
	s.goals = append(s.goals, g)
	return nil
}

// AddDemoGoal appends a new goal built from the template under a fresh ID.
func (s *Store) AddDemoGoal() (goal.Goal, error) {
	g, err := s.template.Build(uuid.NewString())
	if err != nil {
		return goal.Goal{}, fmt.Errorf("building demo goal: %w", err)
	}
	if err := s.AddGoal(g); err != nil {
		return goal.Goal{}, err
	}
	return g, nil
}

// Count returns the number of goals.
func (s *Store) Count() int {
	return len(s.goals)
}

// CountComplete returns the number of goals with every milestone reached.
func (s *Store) CountComplete() int {
	count := 0
	for _, g := range s.goals {
		if g.IsComplete() {
			count++
		}
	}
	return count
}
