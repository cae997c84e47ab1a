package plan

import (
	"github.com/vietdv277/stratus/internal/ipcalc"
	"github.com/vietdv277/stratus/pkg/types"
)

func fixSubnet(id, name, region string, cidrSize int) types.Subnet {
	return types.Subnet{
		ID:           id,
		Name:         name,
		Region:       region,
		AZ:           "a",
		CIDRSize:     cidrSize,
		AvailableIPs: ipcalc.AvailableIPs(cidrSize),
	}
}

func fixRunner(id, name, region string, users, capacity int, subnetIDs ...string) types.Runner {
	return types.Runner{
		ID:        id,
		Name:      name,
		Region:    region,
		Users:     users,
		SubnetIDs: append([]string{}, subnetIDs...),
		Capacity:  capacity,
	}
}

// fixPlan is a one-region plan with two /24 subnets assigned to a single
// runner, the shape of the worked example in the product docs: 100 users at
// two environments each against 502 available addresses.
func fixPlan() types.Plan {
	p := Default()
	p.TotalUsers = 100
	p.EnvsPerUser = 2
	p.SelectedRegions = []string{"us-east-1"}
	p.Subnets = []types.Subnet{
		fixSubnet("sub-a", "subnet-1", "us-east-1", 24),
		fixSubnet("sub-b", "subnet-2", "us-east-1", 24),
	}
	p.Runners = []types.Runner{
		fixRunner("run-1", "runner-1", "us-east-1", 100, 502, "sub-a", "sub-b"),
	}
	p.NextRunnerID = 2
	return p
}
