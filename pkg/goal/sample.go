package goal

// SampleGoalID is the ID of the goal the app starts with.
const SampleGoalID = "g1"

// SampleTitle is the title of the built-in marathon plan.
const SampleTitle = "Marathon: base plan"

// SampleMilestones returns the built-in marathon milestone template.
func SampleMilestones() []Milestone {
	return []Milestone{
		{ID: "m1", Index: 1, Title: "5 × 3 km", Subtitle: "Unlock shirts (bronze/silver/gold)", State: StateReached},
		{ID: "m2", Index: 2, Title: "5 × 5 km", Subtitle: "Unlock shorts (bronze/silver/gold)", State: StateActive},
		{ID: "m3", Index: 3, Title: "3 × 10 km", Subtitle: "Bottle belt (bronze/silver/gold)", State: StateLocked},
		{ID: "m4", Index: 4, Title: "1 × half marathon", Subtitle: "Training shoes (bronze/silver/gold)", State: StateLocked},
		{ID: "m5", Index: 5, Title: "4 weeks of plan", Subtitle: "Watch / HR strap (bronze/silver/gold)", State: StateLocked},
		{ID: "m6", Index: 6, Title: "Marathon", Subtitle: "Super badge + kit", State: StateLocked},
	}
}

// SampleGoal builds the marathon goal under the given ID.
func SampleGoal(id string) Goal {
	g, err := New(id, SampleTitle, "", SampleMilestones())
	if err != nil {
		// The sample template always satisfies ValidateProgression.
		panic(err)
	}
	return g
}
