package ui

import (
	"fmt"
	"strconv"

	pkgtypes "github.com/vietdv277/stratus/pkg/types"
)

// Live subnet preview column widths
var awsSubnetWidths = []int{26, 28, 18, 14, 8, 10}

// Fleet preview column widths
var fleetWidths = []int{32, 9, 9, 9, 12, 30}

// PrintAWSSubnetTable previews live subnets before they are imported. The
// IPs column is the live available count as EC2 reports it, which is not
// the figure the plan will use.
func PrintAWSSubnetTable(subnets []pkgtypes.AWSSubnet) {
	headers := []string{"ID", "Name", "CIDR", "AZ", "IPs", "State"}

	var rows [][]cell
	for _, s := range subnets {
		stateStyle := MutedStyle
		if s.State == "available" {
			stateStyle = OKStyle
		}
		rows = append(rows, []cell{
			{s.ID, IDStyle},
			{s.Name, NameStyle},
			{s.CIDR, ValueStyle},
			{s.AZ, ValueStyle},
			{strconv.Itoa(s.AvailableIPs), MutedStyle},
			{s.State, stateStyle},
		})
	}

	printBoxTable(headers, awsSubnetWidths, rows, "subnets")
}

// PrintFleetTable previews Auto Scaling Groups before they are imported.
func PrintFleetTable(fleets []pkgtypes.RunnerFleet) {
	headers := []string{"Name", "Desired", "Min", "Max", "Status", "Subnets"}

	var rows [][]cell
	for _, f := range fleets {
		rows = append(rows, []cell{
			{f.Name, NameStyle},
			{strconv.Itoa(f.DesiredCapacity), ValueStyle},
			{strconv.Itoa(f.MinSize), MutedStyle},
			{strconv.Itoa(f.MaxSize), MutedStyle},
			{f.Status, OKStyle},
			{fmt.Sprintf("%d ids", len(f.SubnetIDs)), MutedStyle},
		})
	}

	printBoxTable(headers, fleetWidths, rows, "fleets")
}
