package plan

import "github.com/vietdv277/stratus/pkg/types"

// Import bulk-loads subnets and runners converted from live AWS resources.
// Regions the imported items live in are selected as needed, items whose id
// is already in the plan are skipped, and the invariant pass runs once at
// the end, so existing runner allocations are not redistributed. Returns
// how many subnets and runners were actually added.
func Import(p *types.Plan, subnets []types.Subnet, runners []types.Runner) (int, int) {
	subnetsAdded := 0
	for _, s := range subnets {
		if _, ok := FindSubnet(*p, s.ID); ok {
			continue
		}
		if !RegionSelected(*p, s.Region) {
			p.SelectedRegions = append(p.SelectedRegions, s.Region)
		}
		p.Subnets = append(p.Subnets, s)
		subnetsAdded++
	}

	runnersAdded := 0
	for _, r := range runners {
		if _, ok := FindRunner(*p, r.ID); ok {
			continue
		}
		if !RegionSelected(*p, r.Region) {
			p.SelectedRegions = append(p.SelectedRegions, r.Region)
		}
		if r.SubnetIDs == nil {
			r.SubnetIDs = []string{}
		}
		p.Runners = append(p.Runners, r)
		runnersAdded++
	}

	if subnetsAdded > 0 || runnersAdded > 0 {
		finalize(p)
	}
	return subnetsAdded, runnersAdded
}
