package tui

import (
	"github.com/stefanpenner/habitquest/pkg/goal"
)

// GoalItem is a goal card on the home screen.
type GoalItem struct {
	ID       string
	Title    string
	Progress float64
	NextStep string
	Complete bool
}

// BuildGoalItems converts goals into home screen cards, keeping their order.
func BuildGoalItems(goals []goal.Goal) []GoalItem {
	items := make([]GoalItem, 0, len(goals))
	for _, g := range goals {
		items = append(items, GoalItem{
			ID:       g.ID,
			Title:    displayName(g),
			Progress: g.Progress,
			NextStep: g.NextStep(),
			Complete: g.IsComplete(),
		})
	}
	return items
}

func displayName(g goal.Goal) string {
	if g.Title != "" {
		return g.Title
	}
	return g.ID
}

// MilestoneRow is one line of the milestone timeline on the detail screen.
type MilestoneRow struct {
	Milestone     goal.Milestone
	Icon          string
	ActionEnabled bool
	ActionLabel   string
}

// BuildMilestoneRows converts a goal's milestones into timeline rows.
func BuildMilestoneRows(milestones []goal.Milestone) []MilestoneRow {
	rows := make([]MilestoneRow, 0, len(milestones))
	for _, m := range milestones {
		rows = append(rows, MilestoneRow{
			Milestone:     m,
			Icon:          stateIcon(m.State),
			ActionEnabled: goal.IsActionEnabled(m),
			ActionLabel:   goal.ActionLabel(m),
		})
	}
	return rows
}

func stateIcon(s goal.MilestoneState) string {
	switch s {
	case goal.StateReached:
		return IconReached
	case goal.StateActive:
		return IconActive
	default:
		return IconLocked
	}
}

// firstOpenMilestone returns the position of the first milestone that is not
// reached, or 0.
func firstOpenMilestone(milestones []goal.Milestone) int {
	for i, m := range milestones {
		if !m.IsReached() {
			return i
		}
	}
	return 0
}
