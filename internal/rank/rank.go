// Package rank turns the full player pool plus the league ownership snapshot
// into the ordered waiver candidate list. Pure functions only; everything is
// recomputed per request.
package rank

import (
	"math"
	"sort"

	"github.com/speeddemonreturns/draft-waiver--assistant/internal/model"
)

// Limit is how many candidates a report carries.
const Limit = 25

// Rank deduplicates players by id (first occurrence wins), drops everyone in
// owned, sorts the rest by points per game descending, and truncates to
// Limit. Players with no PPG value sort last; ties break ascending by id so
// the order is total and reproducible.
func Rank(players []model.PlayerRecord, owned *model.OwnershipSet) []model.PlayerRecord {
	seen := make(map[string]struct{}, len(players))
	eligible := make([]model.PlayerRecord, 0, len(players))
	for _, p := range players {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		if owned.Owned(p.ID) {
			continue
		}
		eligible = append(eligible, p)
	}

	sort.Slice(eligible, func(i, j int) bool {
		return less(eligible[i], eligible[j])
	})

	if len(eligible) > Limit {
		eligible = eligible[:Limit]
	}
	return eligible
}

func less(a, b model.PlayerRecord) bool {
	ap, bp := sortKey(a), sortKey(b)
	if ap != bp {
		return ap > bp
	}
	return a.ID < b.ID
}

// sortKey treats a missing PPG as -inf so those players rank below a genuine
// 0.0 instead of erroring out.
func sortKey(p model.PlayerRecord) float64 {
	if p.PointsPerGame == nil {
		return math.Inf(-1)
	}
	return *p.PointsPerGame
}
