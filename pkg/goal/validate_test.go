package goal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProgression(t *testing.T) {
	tests := []struct {
		name       string
		milestones []Milestone
		wantErr    error
	}{
		{name: "empty", milestones: nil},
		{name: "sample", milestones: SampleMilestones()},
		{
			name:       "all reached",
			milestones: withStates(StateReached, StateReached, StateReached, StateReached, StateReached, StateReached),
		},
		{
			name:       "all locked",
			milestones: withStates(StateLocked, StateLocked, StateLocked, StateLocked, StateLocked, StateLocked),
		},
		{
			name:       "reached then locked without active",
			milestones: withStates(StateReached, StateReached, StateLocked, StateLocked, StateLocked, StateLocked),
		},
		{
			name:       "two active",
			milestones: withStates(StateReached, StateActive, StateActive, StateLocked, StateLocked, StateLocked),
			wantErr:    ErrInvalidProgression,
		},
		{
			name:       "reached after locked",
			milestones: withStates(StateReached, StateLocked, StateReached, StateLocked, StateLocked, StateLocked),
			wantErr:    ErrInvalidProgression,
		},
		{
			name:       "active after locked",
			milestones: withStates(StateLocked, StateActive, StateLocked, StateLocked, StateLocked, StateLocked),
			wantErr:    ErrInvalidProgression,
		},
		{
			name: "duplicate id",
			milestones: []Milestone{
				{ID: "m1", Index: 1, State: StateReached},
				{ID: "m1", Index: 2, State: StateLocked},
			},
			wantErr: ErrInvalidMilestone,
		},
		{
			name: "duplicate index",
			milestones: []Milestone{
				{ID: "m1", Index: 1, State: StateReached},
				{ID: "m2", Index: 1, State: StateLocked},
			},
			wantErr: ErrInvalidMilestone,
		},
		{
			name:       "zero index",
			milestones: []Milestone{{ID: "m1", Index: 0, State: StateLocked}},
			wantErr:    ErrInvalidMilestone,
		},
		{
			name:       "missing id",
			milestones: []Milestone{{Index: 1, State: StateLocked}},
			wantErr:    ErrInvalidMilestone,
		},
		{
			name:       "unknown state",
			milestones: []Milestone{{ID: "m1", Index: 1, State: "paused"}},
			wantErr:    ErrInvalidMilestone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProgression(tt.milestones)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewSortsByIndex(t *testing.T) {
	ms := SampleMilestones()
	shuffled := []Milestone{ms[3], ms[0], ms[5], ms[1], ms[4], ms[2]}

	g, err := New("g", "t", "", shuffled)
	require.NoError(t, err)

	for i, m := range g.Milestones() {
		assert.Equal(t, i+1, m.Index)
	}
	// input slice is left alone
	assert.Equal(t, "m4", shuffled[0].ID)
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New("g", "t", "", withStates(StateLocked, StateReached, StateLocked, StateLocked, StateLocked, StateLocked))
	assert.ErrorIs(t, err, ErrInvalidProgression)

	_, err = New("", "t", "", SampleMilestones())
	assert.Error(t, err)
}

func TestParseState(t *testing.T) {
	s, err := ParseState("reached")
	require.NoError(t, err)
	assert.Equal(t, StateReached, s)

	s, err = ParseState("")
	require.NoError(t, err)
	assert.Equal(t, StateLocked, s)

	_, err = ParseState("done")
	assert.ErrorIs(t, err, ErrInvalidMilestone)
}
