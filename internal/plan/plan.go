// Package plan owns the capacity-planning state and every operation over
// it. Mutations work in place on a single plan value and finish with an
// invariant pass that prunes stale subnet references, reassigns orphaned
// runners, and bootstraps or tears down the runner list as the region
// selection demands. Derived figures are recomputed on demand; nothing is
// cached between mutations.
package plan

import "github.com/vietdv277/stratus/pkg/types"

// Defaults for the plan-wide numeric fields.
const (
	DefaultTotalUsers  = 10
	DefaultEnvsPerUser = 1
	DefaultAZCount     = 2
	DefaultVPCCIDRSize = 16
)

// Clamping bounds for the plan-wide numeric fields. The setters and the
// token decoder apply the same bounds.
const (
	MinTotalUsers  = 1
	MaxTotalUsers  = 99999
	MinEnvsPerUser = 1
	MaxEnvsPerUser = 10
	MinAZCount     = 1
	MaxAZCount     = 3
	MinVPCCIDRSize = 16
	MaxVPCCIDRSize = 22
)

// Default returns the plan a fresh session starts from. Collections are
// non-nil so encoded defaults round-trip exactly.
func Default() types.Plan {
	return types.Plan{
		TotalUsers:      DefaultTotalUsers,
		EnvsPerUser:     DefaultEnvsPerUser,
		AZCount:         DefaultAZCount,
		VPCCIDRSize:     DefaultVPCCIDRSize,
		SelectedRegions: []string{},
		Subnets:         []types.Subnet{},
		Runners:         []types.Runner{},
		NextRunnerID:    1,
	}
}

// FindSubnet returns the subnet with the given id.
func FindSubnet(p types.Plan, id string) (types.Subnet, bool) {
	for _, s := range p.Subnets {
		if s.ID == id {
			return s, true
		}
	}
	return types.Subnet{}, false
}

// FindRunner returns the runner with the given id.
func FindRunner(p types.Plan, id string) (types.Runner, bool) {
	for _, r := range p.Runners {
		if r.ID == id {
			return r, true
		}
	}
	return types.Runner{}, false
}

// SubnetNames resolves subnet ids to display names, skipping ids that are
// no longer part of the plan.
func SubnetNames(p types.Plan, ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := FindSubnet(p, id); ok {
			names = append(names, s.Name)
		}
	}
	return names
}

// Clamp bounds v to the [lo, hi] range.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RegionSelected reports whether the region code is part of the plan's
// selection.
func RegionSelected(p types.Plan, code string) bool {
	for _, r := range p.SelectedRegions {
		if r == code {
			return true
		}
	}
	return false
}
