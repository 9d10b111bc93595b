package goal

// CompletionMessage is the next-step label shown once every milestone is reached.
const CompletionMessage = "All milestones complete!"

// ComputeProgress returns the fraction of milestones that are reached.
// An empty sequence has zero progress.
func ComputeProgress(milestones []Milestone) float64 {
	if len(milestones) == 0 {
		return 0
	}
	reached := 0
	for _, m := range milestones {
		if m.IsReached() {
			reached++
		}
	}
	return float64(reached) / float64(len(milestones))
}

// NextStepLabel returns the title of the lowest-index milestone that is not
// reached, or CompletionMessage if there is none.
func NextStepLabel(milestones []Milestone) string {
	var next *Milestone
	for i := range milestones {
		m := &milestones[i]
		if m.IsReached() {
			continue
		}
		if next == nil || m.Index < next.Index {
			next = m
		}
	}
	if next == nil {
		return CompletionMessage
	}
	return next.Title
}

// IsActionEnabled reports whether the reward action may be invoked for m.
func IsActionEnabled(m Milestone) bool {
	return !m.IsLocked()
}

// ActionLabel is the caption of the reward action for m.
func ActionLabel(m Milestone) string {
	if IsActionEnabled(m) {
		return "Rewards"
	}
	return "Locked"
}
