package goal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMilestone   = errors.New("invalid milestone")
	ErrInvalidProgression = errors.New("invalid milestone progression")
)

// ValidateProgression checks a sequence of milestones, already ordered by index.
//
// Indices must be positive and unique, IDs non-empty and unique, and the states
// must read reached*, then at most one active, then locked*.
func ValidateProgression(milestones []Milestone) error {
	ids := make(map[string]bool, len(milestones))
	indices := make(map[int]bool, len(milestones))

	// 0 = reached run, 1 = after active, 2 = locked run
	phase := 0
	for i, m := range milestones {
		if m.ID == "" {
			return fmt.Errorf("%w: milestone at position %d has no id", ErrInvalidMilestone, i+1)
		}
		if ids[m.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidMilestone, m.ID)
		}
		ids[m.ID] = true

		if m.Index < 1 {
			return fmt.Errorf("%w: %s has index %d", ErrInvalidMilestone, m.ID, m.Index)
		}
		if indices[m.Index] {
			return fmt.Errorf("%w: duplicate index %d", ErrInvalidMilestone, m.Index)
		}
		indices[m.Index] = true
		if i > 0 && m.Index < milestones[i-1].Index {
			return fmt.Errorf("%w: %s is out of index order", ErrInvalidMilestone, m.ID)
		}

		switch m.State {
		case StateReached:
			if phase > 0 {
				return fmt.Errorf("%w: %s is reached after an unreached milestone", ErrInvalidProgression, m.ID)
			}
		case StateActive:
			if phase > 0 {
				return fmt.Errorf("%w: %s is active after an unreached milestone", ErrInvalidProgression, m.ID)
			}
			phase = 1
		case StateLocked:
			phase = 2
		default:
			return fmt.Errorf("%w: %s has unknown state %q", ErrInvalidMilestone, m.ID, m.State)
		}
	}
	return nil
}
