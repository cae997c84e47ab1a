package types

// Summary holds the figures derived from a Plan for display and reports.
type Summary struct {
	TotalPlanned        int      // TotalUsers * EnvsPerUser
	AllocatedUsers      int      // sum of Runner.Users, may diverge from TotalUsers
	TotalCapacity       int      // subnets referenced by runners, each counted once
	UtilizationPct      int      // TotalPlanned over TotalCapacity, may exceed 100
	OverCapacityRunners []Runner // runners whose demand exceeds their capacity
	SharedSubnets       []string // subnet names referenced by more than one runner
	OverAllocated       bool     // AllocatedUsers > TotalUsers
	UnderAllocated      bool     // AllocatedUsers < TotalUsers
}
