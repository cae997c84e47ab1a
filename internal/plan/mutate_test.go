package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestToggleRegion(t *testing.T) {
	t.Run("selects and deselects preserving order", func(t *testing.T) {
		// given
		p := Default()

		// when
		ToggleRegion(&p, "us-east-1")
		ToggleRegion(&p, "eu-west-1")
		ToggleRegion(&p, "ap-south-1")
		ToggleRegion(&p, "eu-west-1")

		// then
		assert.Equal(t, []string{"us-east-1", "ap-south-1"}, p.SelectedRegions)
	})

	t.Run("deselecting the last region tears down all runners", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		ToggleRegion(&p, "us-east-1")

		// then
		assert.Empty(t, p.SelectedRegions)
		assert.Empty(t, p.Runners)
		// subnets stay; they are only orphaned, not deleted
		assert.Len(t, p.Subnets, 2)
	})

	t.Run("deselecting a region moves its runners to the first remaining one", func(t *testing.T) {
		// given
		p := fixPlan()
		ToggleRegion(&p, "eu-west-1")
		p.Subnets = append(p.Subnets, fixSubnet("sub-eu", "subnet-3", "eu-west-1", 24))
		p.Runners = append(p.Runners, fixRunner("run-eu", "runner-2", "eu-west-1", 0, 251, "sub-eu"))

		// when
		ToggleRegion(&p, "eu-west-1")

		// then
		moved, ok := FindRunner(p, "run-eu")
		require.True(t, ok)
		assert.Equal(t, "us-east-1", moved.Region)
		assert.Empty(t, moved.SubnetIDs)
		assert.Equal(t, 0, moved.Capacity)
	})
}

func TestAddSubnet(t *testing.T) {
	t.Run("no-op without a selected region", func(t *testing.T) {
		p := Default()
		AddSubnet(&p)
		assert.Empty(t, p.Subnets)
	})

	t.Run("defaults to the first region, zone a, one bit past the VPC block", func(t *testing.T) {
		// given
		p := Default()
		p.VPCCIDRSize = 20
		ToggleRegion(&p, "eu-west-1")
		ToggleRegion(&p, "us-east-1")

		// when
		AddSubnet(&p)

		// then
		require.Len(t, p.Subnets, 1)
		s := p.Subnets[0]
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, "subnet-1", s.Name)
		assert.Equal(t, "eu-west-1", s.Region)
		assert.Equal(t, "a", s.AZ)
		assert.Equal(t, 21, s.CIDRSize)
		assert.Equal(t, 2043, s.AvailableIPs)
	})

	t.Run("first subnet bootstraps a default runner", func(t *testing.T) {
		// given
		p := Default()
		ToggleRegion(&p, "us-east-1")
		require.Empty(t, p.Runners)

		// when
		AddSubnet(&p)

		// then
		require.Len(t, p.Runners, 1)
		r := p.Runners[0]
		assert.Equal(t, "runner-1", r.Name)
		assert.Equal(t, "us-east-1", r.Region)
		assert.Equal(t, p.TotalUsers, r.Users)
		assert.Empty(t, r.SubnetIDs)
		assert.Equal(t, 2, p.NextRunnerID)

		// and no second bootstrap once a runner exists
		AddSubnet(&p)
		assert.Len(t, p.Runners, 1)
	})
}

func TestRemoveSubnet(t *testing.T) {
	t.Run("prunes the subnet from runners and their capacity", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		RemoveSubnet(&p, "sub-b")

		// then
		assert.Len(t, p.Subnets, 1)
		r := p.Runners[0]
		assert.Equal(t, []string{"sub-a"}, r.SubnetIDs)
		assert.Equal(t, 251, r.Capacity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		p := fixPlan()
		RemoveSubnet(&p, "ghost")
		assert.Len(t, p.Subnets, 2)
		assert.Equal(t, 502, p.Runners[0].Capacity)
	})
}

func TestUpdateSubnet(t *testing.T) {
	t.Run("renames without touching placement", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		UpdateSubnet(&p, "sub-a", SubnetPatch{Name: strPtr("private-a")})

		// then
		s, ok := FindSubnet(p, "sub-a")
		require.True(t, ok)
		assert.Equal(t, "private-a", s.Name)
		assert.Equal(t, 24, s.CIDRSize)
	})

	t.Run("prefix change recomputes addresses and runner capacity", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		UpdateSubnet(&p, "sub-a", SubnetPatch{CIDRSize: intPtr(25)})

		// then
		s, _ := FindSubnet(p, "sub-a")
		assert.Equal(t, 123, s.AvailableIPs)
		assert.Equal(t, 123+251, p.Runners[0].Capacity)
	})

	t.Run("region change prunes the subnet from runners left behind", func(t *testing.T) {
		// given
		p := fixPlan()
		ToggleRegion(&p, "eu-west-1")

		// when
		UpdateSubnet(&p, "sub-b", SubnetPatch{Region: strPtr("eu-west-1")})

		// then
		r := p.Runners[0]
		assert.Equal(t, []string{"sub-a"}, r.SubnetIDs)
		assert.Equal(t, 251, r.Capacity)
		// the subnet itself survives under its new region
		s, ok := FindSubnet(p, "sub-b")
		require.True(t, ok)
		assert.Equal(t, "eu-west-1", s.Region)
	})
}

func TestAddRunner(t *testing.T) {
	t.Run("no-op without a selected region", func(t *testing.T) {
		p := Default()
		AddRunner(&p)
		assert.Empty(t, p.Runners)
	})

	t.Run("redistributes the plan total over the grown list", func(t *testing.T) {
		// given a manually edited allocation
		p := fixPlan()
		p.Runners[0].Users = 77

		// when
		AddRunner(&p)

		// then
		require.Len(t, p.Runners, 2)
		assert.Equal(t, 50, p.Runners[0].Users)
		assert.Equal(t, 50, p.Runners[1].Users)
		assert.Equal(t, "runner-2", p.Runners[1].Name)
		assert.Equal(t, "us-east-1", p.Runners[1].Region)
		assert.Empty(t, p.Runners[1].SubnetIDs)
		assert.Equal(t, 0, p.Runners[1].Capacity)
		assert.Equal(t, 3, p.NextRunnerID)
	})

	t.Run("uneven totals favor earlier runners", func(t *testing.T) {
		// given
		p := fixPlan()
		p.TotalUsers = 101

		// when
		AddRunner(&p)

		// then
		assert.Equal(t, 51, p.Runners[0].Users)
		assert.Equal(t, 50, p.Runners[1].Users)
	})
}

func TestRemoveRunner(t *testing.T) {
	t.Run("the last runner cannot be removed", func(t *testing.T) {
		p := fixPlan()
		RemoveRunner(&p, "run-1")
		assert.Len(t, p.Runners, 1)
	})

	t.Run("survivors absorb the plan total", func(t *testing.T) {
		// given
		p := fixPlan()
		AddRunner(&p)
		AddRunner(&p)
		require.Len(t, p.Runners, 3)

		// when
		RemoveRunner(&p, p.Runners[1].ID)

		// then
		require.Len(t, p.Runners, 2)
		assert.Equal(t, 50, p.Runners[0].Users)
		assert.Equal(t, 50, p.Runners[1].Users)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		p := fixPlan()
		AddRunner(&p)
		RemoveRunner(&p, "ghost")
		assert.Len(t, p.Runners, 2)
	})
}

func TestUpdateRunner(t *testing.T) {
	t.Run("manual user counts are sticky", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		UpdateRunner(&p, "run-1", RunnerPatch{Users: intPtr(42)})

		// then
		assert.Equal(t, 42, p.Runners[0].Users)
		// the plan-wide total is untouched, the two may diverge
		assert.Equal(t, 100, p.TotalUsers)
	})

	t.Run("negative user counts floor at zero", func(t *testing.T) {
		p := fixPlan()
		UpdateRunner(&p, "run-1", RunnerPatch{Users: intPtr(-5)})
		assert.Equal(t, 0, p.Runners[0].Users)
	})

	t.Run("moving to a selected region drops mismatched subnets", func(t *testing.T) {
		// given
		p := fixPlan()
		ToggleRegion(&p, "eu-west-1")

		// when
		UpdateRunner(&p, "run-1", RunnerPatch{Region: strPtr("eu-west-1")})

		// then
		r := p.Runners[0]
		assert.Equal(t, "eu-west-1", r.Region)
		assert.Empty(t, r.SubnetIDs)
		assert.Equal(t, 0, r.Capacity)
	})

	t.Run("moving to an unselected region falls back to the first selected", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		UpdateRunner(&p, "run-1", RunnerPatch{Region: strPtr("ap-south-1")})

		// then
		r := p.Runners[0]
		assert.Equal(t, "us-east-1", r.Region)
		assert.Empty(t, r.SubnetIDs)
	})
}

func TestUpdateRunnerSubnets(t *testing.T) {
	t.Run("replaces the set and recomputes capacity", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		UpdateRunnerSubnets(&p, "run-1", []string{"sub-a"})

		// then
		r := p.Runners[0]
		assert.Equal(t, []string{"sub-a"}, r.SubnetIDs)
		assert.Equal(t, 251, r.Capacity)
	})

	t.Run("stale ids contribute nothing and are pruned", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		UpdateRunnerSubnets(&p, "run-1", []string{"sub-a", "ghost"})

		// then
		r := p.Runners[0]
		assert.Equal(t, []string{"sub-a"}, r.SubnetIDs)
		assert.Equal(t, 251, r.Capacity)
	})

	t.Run("duplicate ids count once", func(t *testing.T) {
		p := fixPlan()
		UpdateRunnerSubnets(&p, "run-1", []string{"sub-a", "sub-a"})
		r := p.Runners[0]
		assert.Equal(t, []string{"sub-a"}, r.SubnetIDs)
		assert.Equal(t, 251, r.Capacity)
	})
}

func TestSetters(t *testing.T) {
	t.Run("clamp to their documented bounds", func(t *testing.T) {
		p := Default()

		SetTotalUsers(&p, 0)
		assert.Equal(t, 1, p.TotalUsers)
		SetTotalUsers(&p, 1000000)
		assert.Equal(t, 99999, p.TotalUsers)

		SetEnvsPerUser(&p, 11)
		assert.Equal(t, 10, p.EnvsPerUser)

		SetAZCount(&p, 5)
		assert.Equal(t, 3, p.AZCount)
		SetAZCount(&p, 0)
		assert.Equal(t, 1, p.AZCount)

		SetVPCCIDRSize(&p, 10)
		assert.Equal(t, 16, p.VPCCIDRSize)
		SetVPCCIDRSize(&p, 30)
		assert.Equal(t, 22, p.VPCCIDRSize)
	})

	t.Run("changing the VPC size only affects future subnets", func(t *testing.T) {
		// given
		p := fixPlan()

		// when
		SetVPCCIDRSize(&p, 20)

		// then
		assert.Equal(t, 24, p.Subnets[0].CIDRSize)

		AddSubnet(&p)
		assert.Equal(t, 21, p.Subnets[2].CIDRSize)
	})
}

func TestBootstrapAfterTeardown(t *testing.T) {
	// given a plan torn down by deselecting its only region
	p := fixPlan()
	ToggleRegion(&p, "us-east-1")
	require.Empty(t, p.Runners)

	// when the region comes back, subnets are still there
	ToggleRegion(&p, "us-east-1")

	// then a fresh default runner appears under the next counter value
	require.Len(t, p.Runners, 1)
	assert.Equal(t, "runner-2", p.Runners[0].Name)
	assert.Equal(t, p.TotalUsers, p.Runners[0].Users)
	assert.Equal(t, 3, p.NextRunnerID)
}

func TestMutationsKeepCollectionsNonNil(t *testing.T) {
	p := Default()
	ToggleRegion(&p, "us-east-1")
	ToggleRegion(&p, "us-east-1")

	assert.NotNil(t, p.SelectedRegions)
	assert.NotNil(t, p.Subnets)
	assert.NotNil(t, p.Runners)
}
