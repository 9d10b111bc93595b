package goal

import (
	"context"
	"errors"
	"time"
)

// ErrRewardsUnavailable is returned when no reward backend is configured.
var ErrRewardsUnavailable = errors.New("reward redemption is not available yet")

// Redemption describes a successfully redeemed milestone reward.
type Redemption struct {
	GoalID      string
	MilestoneID string
	Reward      string
	RedeemedAt  time.Time
}

// RewardService redeems the reward attached to a milestone.
// Callers check IsActionEnabled before calling Redeem.
type RewardService interface {
	Redeem(ctx context.Context, goalID, milestoneID string) (Redemption, error)
}

// UnavailableRewards is the RewardService used until a real backend exists.
type UnavailableRewards struct{}

// Redeem always fails with ErrRewardsUnavailable.
func (UnavailableRewards) Redeem(ctx context.Context, goalID, milestoneID string) (Redemption, error) {
	if err := ctx.Err(); err != nil {
		return Redemption{}, err
	}
	return Redemption{}, ErrRewardsUnavailable
}
