package report

import (
	"sort"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

// DefaultRewardThreshold is the number of boxes per reward unit.
const DefaultRewardThreshold = 25

// Rewards computes the reward eligibility for a month of boxes. Pending may
// be negative when more was claimed than earned.
func Rewards(boxes, claimed, threshold int64) entity.RewardStatus {
	if threshold <= 0 {
		threshold = DefaultRewardThreshold
	}
	eligible := boxes / threshold
	return entity.RewardStatus{
		Boxes:     boxes,
		Threshold: threshold,
		Eligible:  eligible,
		Claimed:   claimed,
		Pending:   eligible - claimed,
	}
}

// ClaimedFromLedger folds ledger entries into the claimed counter: the units
// of every claim that has not been reverted by an undo entry.
func ClaimedFromLedger(entries []entity.RewardClaim) int64 {
	reverted := map[int]bool{}
	for _, e := range entries {
		if e.Kind == entity.RewardUndone && e.RevertsId.Valid {
			reverted[int(e.RevertsId.Int32)] = true
		}
	}
	var n int64
	for _, e := range entries {
		if e.Kind == entity.RewardClaimed && !reverted[e.Id] {
			n += int64(e.Units)
		}
	}
	return n
}

// OpenClaims returns the claims that have not been reverted, oldest first.
func OpenClaims(entries []entity.RewardClaim) []entity.RewardClaim {
	reverted := map[int]bool{}
	for _, e := range entries {
		if e.Kind == entity.RewardUndone && e.RevertsId.Valid {
			reverted[int(e.RevertsId.Int32)] = true
		}
	}
	open := make([]entity.RewardClaim, 0, len(entries))
	for _, e := range entries {
		if e.Kind == entity.RewardClaimed && !reverted[e.Id] {
			open = append(open, e)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		if open[i].CreatedAt.Equal(open[j].CreatedAt) {
			return open[i].Id < open[j].Id
		}
		return open[i].CreatedAt.Before(open[j].CreatedAt)
	})
	return open
}
