package types

// Plan is the whole capacity-planning configuration. It is the object the
// codec serializes, so the json tags below are the wire contract for shared
// plan tokens.
type Plan struct {
	TotalUsers      int      `json:"totalUsers"`
	EnvsPerUser     int      `json:"environmentsPerUser"`
	AZCount         int      `json:"azCount"`
	VPCCIDRSize     int      `json:"subnetSize"`
	SelectedRegions []string `json:"selectedRegions"`
	Subnets         []Subnet `json:"subnets"`
	Runners         []Runner `json:"runners"`
	NextRunnerID    int      `json:"nextRunnerId"` // default-name counter, never reused
}

// Subnet represents one planned VPC subnet.
type Subnet struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Region       string `json:"region"`
	AZ           string `json:"az"`
	CIDRSize     int    `json:"cidrSize"`
	AvailableIPs int    `json:"availableIps"` // negative for prefixes >= /30
}

// Runner represents a CI runner pool drawing addresses from plan subnets.
// SubnetIDs are references into Plan.Subnets, not ownership; stale ids are
// pruned whenever the subnet set changes.
type Runner struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Region    string   `json:"region"`
	Users     int      `json:"users"`
	SubnetIDs []string `json:"subnetIds"`
	Capacity  int      `json:"capacity"` // sum of AvailableIPs over SubnetIDs
}
