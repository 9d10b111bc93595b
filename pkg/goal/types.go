package goal

import (
	"fmt"
	"sort"
)

// MilestoneState represents how far along a milestone is.
type MilestoneState string

const (
	StateLocked  MilestoneState = "locked"
	StateActive  MilestoneState = "active"
	StateReached MilestoneState = "reached"
)

// ParseState converts a string (as found in a template file) to a MilestoneState.
func ParseState(s string) (MilestoneState, error) {
	switch MilestoneState(s) {
	case StateLocked, StateActive, StateReached:
		return MilestoneState(s), nil
	case "":
		return StateLocked, nil
	}
	return "", fmt.Errorf("%w: unknown state %q", ErrInvalidMilestone, s)
}

// Milestone is a single checkpoint within a goal.
type Milestone struct {
	ID       string
	Index    int // 1-based, defines display and unlock order
	Title    string
	Subtitle string
	State    MilestoneState
}

// IsReached returns true if the milestone has been reached.
func (m Milestone) IsReached() bool {
	return m.State == StateReached
}

// IsLocked returns true if the milestone is still locked.
func (m Milestone) IsLocked() bool {
	return m.State == StateLocked
}

// Goal is a long-term objective made of an ordered sequence of milestones.
// Goals are values: build them with New and never modify them afterwards.
type Goal struct {
	ID          string
	Title       string
	Description string  // markdown, shown on the detail screen
	Progress    float64 // fraction of reached milestones, 0..1

	milestones []Milestone
}

// New builds a Goal, ordering the milestones by index and computing progress.
// The milestones must satisfy ValidateProgression.
func New(id, title, description string, milestones []Milestone) (Goal, error) {
	if id == "" {
		return Goal{}, fmt.Errorf("goal id must not be empty")
	}

	ms := make([]Milestone, len(milestones))
	copy(ms, milestones)
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Index < ms[j].Index })

	if err := ValidateProgression(ms); err != nil {
		return Goal{}, fmt.Errorf("goal %s: %w", id, err)
	}

	return Goal{
		ID:          id,
		Title:       title,
		Description: description,
		Progress:    ComputeProgress(ms),
		milestones:  ms,
	}, nil
}

// Milestones returns a copy of the goal's milestones in index order.
func (g Goal) Milestones() []Milestone {
	ms := make([]Milestone, len(g.milestones))
	copy(ms, g.milestones)
	return ms
}

// Milestone looks up a milestone by ID.
func (g Goal) Milestone(id string) (Milestone, bool) {
	for _, m := range g.milestones {
		if m.ID == id {
			return m, true
		}
	}
	return Milestone{}, false
}

// NextStep returns the label of the first milestone not yet reached.
func (g Goal) NextStep() string {
	return NextStepLabel(g.milestones)
}

// IsComplete returns true when every milestone has been reached.
func (g Goal) IsComplete() bool {
	return len(g.milestones) > 0 && g.Progress >= 1
}

// WithID returns a copy of the goal under a different ID.
func (g Goal) WithID(id string) Goal {
	c := g
	c.ID = id
	c.milestones = g.Milestones()
	return c
}
