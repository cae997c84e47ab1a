package aws

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/vietdv277/stratus/pkg/provider"
	pkgtypes "github.com/vietdv277/stratus/pkg/types"
)

// ListFleets returns the account's Auto Scaling Groups as runner fleets,
// optionally filtered by a case-insensitive name pattern.
func (c *Client) ListFleets(namePattern string) ([]pkgtypes.RunnerFleet, error) {
	var allGroups []asgtypes.AutoScalingGroup
	var nextToken *string

	for {
		output, err := c.ASG.DescribeAutoScalingGroups(c.ctx, &autoscaling.DescribeAutoScalingGroupsInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to describe auto scaling groups: %w", err)
		}

		allGroups = append(allGroups, output.AutoScalingGroups...)

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	var fleets []pkgtypes.RunnerFleet
	for _, g := range allGroups {
		fleet := toRunnerFleet(g)

		if namePattern != "" {
			if !strings.Contains(strings.ToLower(fleet.Name), strings.ToLower(namePattern)) {
				continue
			}
		}

		fleets = append(fleets, fleet)
	}

	return fleets, nil
}

// DescribeFleet returns a single Auto Scaling Group as a runner fleet.
func (c *Client) DescribeFleet(name string) (*pkgtypes.RunnerFleet, error) {
	output, err := c.ASG.DescribeAutoScalingGroups(c.ctx, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{name},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe auto scaling group: %w", err)
	}

	if len(output.AutoScalingGroups) == 0 {
		return nil, fmt.Errorf("auto scaling group %q: %w", name, provider.ErrNotFound)
	}

	fleet := toRunnerFleet(output.AutoScalingGroups[0])
	return &fleet, nil
}

// toRunnerFleet converts an AWS ASG type to our fleet view
func toRunnerFleet(g asgtypes.AutoScalingGroup) pkgtypes.RunnerFleet {
	fleet := pkgtypes.RunnerFleet{
		Name:            deref(g.AutoScalingGroupName),
		ARN:             deref(g.AutoScalingGroupARN),
		DesiredCapacity: int(derefInt32(g.DesiredCapacity)),
		MinSize:         int(derefInt32(g.MinSize)),
		MaxSize:         int(derefInt32(g.MaxSize)),
		Status:          deref(g.Status),
		AZs:             g.AvailabilityZones,
		SubnetIDs:       SplitZoneIdentifier(deref(g.VPCZoneIdentifier)),
	}

	if g.CreatedTime != nil {
		fleet.CreatedTime = *g.CreatedTime
	}

	// Set status if not provided
	if fleet.Status == "" {
		fleet.Status = "InService"
	}

	return fleet
}

// SplitZoneIdentifier splits an ASG's VPCZoneIdentifier into subnet ids.
// The field is a comma-separated list and may be empty.
func SplitZoneIdentifier(zoneIdentifier string) []string {
	var ids []string
	for _, part := range strings.Split(zoneIdentifier, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
