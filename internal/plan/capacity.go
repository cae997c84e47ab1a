package plan

import (
	"math"

	"github.com/vietdv277/stratus/pkg/types"
)

// RunnerPlanned returns the address demand one runner represents.
func RunnerPlanned(p types.Plan, r types.Runner) int {
	return r.Users * p.EnvsPerUser
}

// TotalPlanned returns the address demand implied by the plan-wide user
// count. It is computed from TotalUsers, not from the per-runner
// allocations; the two figures diverge once runner counts are edited by
// hand, and the allocation warnings report exactly that divergence.
func TotalPlanned(p types.Plan) int {
	return p.TotalUsers * p.EnvsPerUser
}

// TotalCapacity sums available addresses over every subnet referenced by at
// least one runner. A subnet shared by several runners counts once; a
// subnet assigned to no runner contributes nothing.
func TotalCapacity(p types.Plan) int {
	referenced := make(map[string]bool)
	for _, r := range p.Runners {
		for _, id := range r.SubnetIDs {
			referenced[id] = true
		}
	}
	total := 0
	for _, s := range p.Subnets {
		if referenced[s.ID] {
			total += s.AvailableIPs
		}
	}
	return total
}

// OverCapacityRunners returns the runners whose planned demand exceeds
// their capacity. Runners with zero capacity are never flagged.
func OverCapacityRunners(p types.Plan) []types.Runner {
	flagged := []types.Runner{}
	for _, r := range p.Runners {
		if r.Capacity > 0 && RunnerPlanned(p, r) > r.Capacity {
			flagged = append(flagged, r)
		}
	}
	return flagged
}

// SharedSubnets returns the names of subnets referenced by more than one
// runner, in subnet order.
func SharedSubnets(p types.Plan) []string {
	holders := make(map[string]int)
	for _, r := range p.Runners {
		seen := make(map[string]bool)
		for _, id := range r.SubnetIDs {
			if !seen[id] {
				seen[id] = true
				holders[id]++
			}
		}
	}
	shared := []string{}
	for _, s := range p.Subnets {
		if holders[s.ID] > 1 {
			shared = append(shared, s.Name)
		}
	}
	return shared
}

// UtilizationPct returns planned demand as a percentage of total capacity,
// rounded half away from zero. Zero when no capacity is referenced; may
// exceed 100.
func UtilizationPct(p types.Plan) int {
	capacity := TotalCapacity(p)
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(TotalPlanned(p)) / float64(capacity) * 100))
}

// Summarize computes every derived figure the tables and reports consume.
func Summarize(p types.Plan) types.Summary {
	allocated := 0
	for _, r := range p.Runners {
		allocated += r.Users
	}
	return types.Summary{
		TotalPlanned:        TotalPlanned(p),
		AllocatedUsers:      allocated,
		TotalCapacity:       TotalCapacity(p),
		UtilizationPct:      UtilizationPct(p),
		OverCapacityRunners: OverCapacityRunners(p),
		SharedSubnets:       SharedSubnets(p),
		OverAllocated:       allocated > p.TotalUsers,
		UnderAllocated:      allocated < p.TotalUsers,
	}
}
