package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/pkg/types"
)

// Plan subnet table column widths
var planSubnetWidths = []int{36, 22, 12, 4, 6, 13}

// Runner table column widths
var runnerWidths = []int{24, 22, 12, 7, 9, 10, 30}

// PrintPlanSubnetTable prints the plan's subnets in a styled box table
func PrintPlanSubnetTable(p types.Plan) {
	headers := []string{"ID", "Name", "Region", "AZ", "CIDR", "Available IPs"}

	var rows [][]cell
	for _, s := range p.Subnets {
		ipStyle := ValueStyle
		if s.AvailableIPs <= 0 {
			// /30 and narrower plans are degenerate; make it visible.
			ipStyle = BadStyle
		}
		rows = append(rows, []cell{
			{s.ID, IDStyle},
			{s.Name, NameStyle},
			{s.Region, ValueStyle},
			{s.AZ, ValueStyle},
			{fmt.Sprintf("/%d", s.CIDRSize), ValueStyle},
			{strconv.Itoa(s.AvailableIPs), ipStyle},
		})
	}

	printBoxTable(headers, planSubnetWidths, rows, "subnets")
}

// PrintRunnerTable prints the plan's runners with their planned demand,
// capacity, and an over-capacity marker.
func PrintRunnerTable(p types.Plan) {
	headers := []string{"ID", "Name", "Region", "Users", "Planned", "Capacity", "Subnets"}

	var rows [][]cell
	for _, r := range p.Runners {
		planned := plan.RunnerPlanned(p, r)

		capText := strconv.Itoa(r.Capacity)
		capStyle := ValueStyle
		if r.Capacity > 0 && planned > r.Capacity {
			capText = "▲ " + capText
			capStyle = BadStyle
		}

		rows = append(rows, []cell{
			{r.ID, IDStyle},
			{r.Name, NameStyle},
			{r.Region, ValueStyle},
			{strconv.Itoa(r.Users), ValueStyle},
			{strconv.Itoa(planned), ValueStyle},
			{capText, capStyle},
			{strings.Join(plan.SubnetNames(p, r.SubnetIDs), ", "), MutedStyle},
		})
	}

	printBoxTable(headers, runnerWidths, rows, "runners")
}

// PrintSummary prints the capacity summary block with the utilization
// colored by band: green under 80%, yellow to 100%, red above.
func PrintSummary(p types.Plan, s types.Summary) {
	fmt.Println()
	fmt.Println(HeaderStyle.Render("Capacity Summary"))
	fmt.Printf("  Planned utilization:  %d\n", s.TotalPlanned)
	fmt.Printf("  Allocated users:      %d\n", s.AllocatedUsers)
	fmt.Printf("  Total capacity:       %d\n", s.TotalCapacity)

	utilStyle := OKStyle
	switch {
	case s.UtilizationPct > 100:
		utilStyle = BadStyle
	case s.UtilizationPct >= 80:
		utilStyle = WarnStyle
	}
	fmt.Printf("  Utilization:          %s\n", utilStyle.Render(fmt.Sprintf("%d%%", s.UtilizationPct)))
}

// PrintWarnings prints the allocation and contention warnings, if any.
func PrintWarnings(p types.Plan, s types.Summary) {
	var lines []string
	if s.OverAllocated {
		lines = append(lines, fmt.Sprintf("runners hold %d users, plan expects %d (over-allocated)", s.AllocatedUsers, p.TotalUsers))
	}
	if s.UnderAllocated {
		lines = append(lines, fmt.Sprintf("runners hold %d users, plan expects %d (under-allocated)", s.AllocatedUsers, p.TotalUsers))
	}
	for _, r := range s.OverCapacityRunners {
		lines = append(lines, fmt.Sprintf("runner %s needs %d addresses but has capacity for %d", r.Name, plan.RunnerPlanned(p, r), r.Capacity))
	}
	if len(s.SharedSubnets) > 0 {
		lines = append(lines, "shared subnets: "+strings.Join(s.SharedSubnets, ", "))
	}

	if len(lines) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(WarnStyle.Render("Warnings"))
	for _, line := range lines {
		fmt.Printf("  %s %s\n", WarnStyle.Render("!"), line)
	}
}
