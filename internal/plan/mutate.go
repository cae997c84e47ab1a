package plan

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vietdv277/stratus/internal/ipcalc"
	"github.com/vietdv277/stratus/pkg/types"
)

// SubnetPatch carries optional field updates for a subnet; nil fields are
// left untouched.
type SubnetPatch struct {
	Name     *string
	Region   *string
	AZ       *string
	CIDRSize *int
}

// RunnerPatch carries optional field updates for a runner; nil fields are
// left untouched.
type RunnerPatch struct {
	Name   *string
	Region *string
	Users  *int
}

// ToggleRegion adds the region to the selection, or removes it when already
// selected. The order of the remaining selection is preserved.
func ToggleRegion(p *types.Plan, code string) {
	for i, r := range p.SelectedRegions {
		if r == code {
			p.SelectedRegions = append(p.SelectedRegions[:i], p.SelectedRegions[i+1:]...)
			finalize(p)
			return
		}
	}
	p.SelectedRegions = append(p.SelectedRegions, code)
	finalize(p)
}

// AddSubnet appends a subnet with default placement: first selected region,
// zone a, one bit narrower than the VPC block. No-op when no region is
// selected.
func AddSubnet(p *types.Plan) {
	if len(p.SelectedRegions) == 0 {
		return
	}
	size := p.VPCCIDRSize + 1
	p.Subnets = append(p.Subnets, types.Subnet{
		ID:           uuid.NewString(),
		Name:         fmt.Sprintf("subnet-%d", len(p.Subnets)+1),
		Region:       p.SelectedRegions[0],
		AZ:           "a",
		CIDRSize:     size,
		AvailableIPs: ipcalc.AvailableIPs(size),
	})
	finalize(p)
}

// RemoveSubnet deletes the subnet and prunes it from every runner's subnet
// set. No-op when the id is unknown.
func RemoveSubnet(p *types.Plan, id string) {
	for i, s := range p.Subnets {
		if s.ID == id {
			p.Subnets = append(p.Subnets[:i], p.Subnets[i+1:]...)
			finalize(p)
			return
		}
	}
}

// UpdateSubnet merges the non-nil patch fields into the subnet. A prefix
// change recomputes the available addresses.
func UpdateSubnet(p *types.Plan, id string, patch SubnetPatch) {
	for i := range p.Subnets {
		s := &p.Subnets[i]
		if s.ID != id {
			continue
		}
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.Region != nil {
			s.Region = *patch.Region
		}
		if patch.AZ != nil {
			s.AZ = *patch.AZ
		}
		if patch.CIDRSize != nil {
			s.CIDRSize = *patch.CIDRSize
			s.AvailableIPs = ipcalc.AvailableIPs(s.CIDRSize)
		}
		finalize(p)
		return
	}
}

// AddRunner redistributes the plan-wide user count over the grown runner
// list and appends a runner holding the last share. No-op when no region is
// selected.
func AddRunner(p *types.Plan) {
	if len(p.SelectedRegions) == 0 {
		return
	}
	shares := Distribute(len(p.Runners)+1, p.TotalUsers)
	for i := range p.Runners {
		p.Runners[i].Users = shares[i]
	}
	p.Runners = append(p.Runners, newRunner(p, shares[len(shares)-1]))
	finalize(p)
}

// RemoveRunner deletes the runner and redistributes the plan-wide user
// count over the survivors. No-op when the runner is unknown or the last
// one left.
func RemoveRunner(p *types.Plan, id string) {
	if len(p.Runners) <= 1 {
		return
	}
	for i, r := range p.Runners {
		if r.ID == id {
			p.Runners = append(p.Runners[:i], p.Runners[i+1:]...)
			shares := Distribute(len(p.Runners), p.TotalUsers)
			for j := range p.Runners {
				p.Runners[j].Users = shares[j]
			}
			finalize(p)
			return
		}
	}
}

// UpdateRunner merges the non-nil patch fields into the runner. User counts
// set here are sticky: no redistribution happens until a runner is added or
// removed.
func UpdateRunner(p *types.Plan, id string, patch RunnerPatch) {
	for i := range p.Runners {
		r := &p.Runners[i]
		if r.ID != id {
			continue
		}
		if patch.Name != nil {
			r.Name = *patch.Name
		}
		if patch.Region != nil {
			r.Region = *patch.Region
		}
		if patch.Users != nil {
			r.Users = *patch.Users
			if r.Users < 0 {
				r.Users = 0
			}
		}
		finalize(p)
		return
	}
}

// UpdateRunnerSubnets replaces the runner's subnet set. Ids that do not
// resolve to a subnet in the runner's region are tolerated and pruned by
// the invariant pass, contributing no capacity.
func UpdateRunnerSubnets(p *types.Plan, id string, subnetIDs []string) {
	for i := range p.Runners {
		r := &p.Runners[i]
		if r.ID != id {
			continue
		}
		r.SubnetIDs = append([]string{}, subnetIDs...)
		finalize(p)
		return
	}
}

// SetTotalUsers updates the plan-wide user count, clamped to its bounds.
// Existing runner allocations are left as they are.
func SetTotalUsers(p *types.Plan, v int) {
	p.TotalUsers = Clamp(v, MinTotalUsers, MaxTotalUsers)
	finalize(p)
}

// SetEnvsPerUser updates the environments-per-user multiplier, clamped to
// its bounds.
func SetEnvsPerUser(p *types.Plan, v int) {
	p.EnvsPerUser = Clamp(v, MinEnvsPerUser, MaxEnvsPerUser)
	finalize(p)
}

// SetAZCount updates the availability-zone count, clamped to its bounds.
func SetAZCount(p *types.Plan, v int) {
	p.AZCount = Clamp(v, MinAZCount, MaxAZCount)
	finalize(p)
}

// SetVPCCIDRSize updates the VPC prefix length, clamped to its bounds.
// Existing subnets keep their size; the new value only seeds defaults.
func SetVPCCIDRSize(p *types.Plan, v int) {
	p.VPCCIDRSize = Clamp(v, MinVPCCIDRSize, MaxVPCCIDRSize)
	finalize(p)
}

// finalize restores the plan invariants after a mutation, in order: tear
// down all runners when no region is selected, move runners out of
// unselected regions (clearing their subnet sets), prune subnet references
// that are gone or in the wrong region and recompute every capacity, then
// bootstrap a single default runner when regions and subnets exist but no
// runner does. Decoding a shared token does not run this pass, so a
// deliberately runner-less shared plan survives loading.
func finalize(p *types.Plan) {
	if len(p.SelectedRegions) == 0 {
		p.Runners = []types.Runner{}
	}
	for i := range p.Runners {
		r := &p.Runners[i]
		if !RegionSelected(*p, r.Region) {
			r.Region = p.SelectedRegions[0]
			r.SubnetIDs = []string{}
		}
	}
	for i := range p.Runners {
		r := &p.Runners[i]
		kept := make([]string, 0, len(r.SubnetIDs))
		seen := make(map[string]bool)
		for _, id := range r.SubnetIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			if s, ok := FindSubnet(*p, id); ok && s.Region == r.Region {
				kept = append(kept, id)
			}
		}
		r.SubnetIDs = kept
		r.Capacity = capacityOf(*p, kept)
	}
	if len(p.SelectedRegions) > 0 && len(p.Subnets) > 0 && len(p.Runners) == 0 {
		p.Runners = append(p.Runners, newRunner(p, p.TotalUsers))
	}
}

func capacityOf(p types.Plan, ids []string) int {
	total := 0
	for _, id := range ids {
		if s, ok := FindSubnet(p, id); ok {
			total += s.AvailableIPs
		}
	}
	return total
}

func newRunner(p *types.Plan, users int) types.Runner {
	r := types.Runner{
		ID:        uuid.NewString(),
		Name:      fmt.Sprintf("runner-%d", p.NextRunnerID),
		Region:    p.SelectedRegions[0],
		Users:     users,
		SubnetIDs: []string{},
	}
	p.NextRunnerID++
	return r
}
