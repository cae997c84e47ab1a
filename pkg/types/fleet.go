package types

import "time"

// RunnerFleet represents an AWS Auto Scaling Group backing a CI runner pool.
type RunnerFleet struct {
	Name            string
	ARN             string
	DesiredCapacity int
	MinSize         int
	MaxSize         int
	Status          string
	CreatedTime     time.Time
	AZs             []string
	SubnetIDs       []string // from VPCZoneIdentifier
}
