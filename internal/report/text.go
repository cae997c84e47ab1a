package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/pkg/types"
)

// WriteText renders the plan as a multi-section plain-text report, the same
// content the PDF carries.
func WriteText(w io.Writer, p types.Plan) error {
	s := plan.Summarize(p)

	var sb strings.Builder
	sb.WriteString(Title + "\n")
	sb.WriteString(strings.Repeat("=", len(Title)) + "\n\n")

	sb.WriteString("Plan Summary\n")
	sb.WriteString("------------\n")
	fmt.Fprintf(&sb, "  Total users:            %d\n", p.TotalUsers)
	fmt.Fprintf(&sb, "  Environments per user:  %d\n", p.EnvsPerUser)
	fmt.Fprintf(&sb, "  Availability zones:     %d\n", p.AZCount)
	fmt.Fprintf(&sb, "  VPC CIDR:               /%d\n", p.VPCCIDRSize)
	fmt.Fprintf(&sb, "  Regions:                %s\n\n", joinOrNone(p.SelectedRegions))

	sb.WriteString("Subnets\n")
	sb.WriteString("-------\n")
	if len(p.Subnets) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, sub := range p.Subnets {
		fmt.Fprintf(&sb, "  %-20s %s%s  /%d  %d IPs\n",
			sub.Name, sub.Region, sub.AZ, sub.CIDRSize, sub.AvailableIPs)
	}
	sb.WriteString("\n")

	sb.WriteString("Runners\n")
	sb.WriteString("-------\n")
	if len(p.Runners) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, r := range p.Runners {
		fmt.Fprintf(&sb, "  %-20s %s  %d users  planned %d  capacity %d\n",
			r.Name, r.Region, r.Users, plan.RunnerPlanned(p, r), r.Capacity)
		if names := plan.SubnetNames(p, r.SubnetIDs); len(names) > 0 {
			fmt.Fprintf(&sb, "      subnets: %s\n", strings.Join(names, ", "))
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Capacity\n")
	sb.WriteString("--------\n")
	fmt.Fprintf(&sb, "  Planned utilization:    %d\n", s.TotalPlanned)
	fmt.Fprintf(&sb, "  Allocated users:        %d\n", s.AllocatedUsers)
	fmt.Fprintf(&sb, "  Total capacity:         %d\n", s.TotalCapacity)
	fmt.Fprintf(&sb, "  Utilization:            %d%%\n", s.UtilizationPct)

	if warnings := warningLines(p, s); len(warnings) > 0 {
		sb.WriteString("\nWarnings\n")
		sb.WriteString("--------\n")
		for _, line := range warnings {
			sb.WriteString("  " + line + "\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return &ExportError{Format: "text", cause: err}
	}
	return nil
}

// warningLines renders the allocation and contention warnings shared by the
// text and PDF reports.
func warningLines(p types.Plan, s types.Summary) []string {
	var lines []string
	if s.OverAllocated {
		lines = append(lines, fmt.Sprintf("Over-allocated: runners hold %d users, plan expects %d", s.AllocatedUsers, p.TotalUsers))
	}
	if s.UnderAllocated {
		lines = append(lines, fmt.Sprintf("Under-allocated: runners hold %d users, plan expects %d", s.AllocatedUsers, p.TotalUsers))
	}
	for _, r := range s.OverCapacityRunners {
		lines = append(lines, fmt.Sprintf("Runner %s needs %d addresses but has capacity for %d", r.Name, plan.RunnerPlanned(p, r), r.Capacity))
	}
	if len(s.SharedSubnets) > 0 {
		lines = append(lines, "Shared subnets (contention risk): "+strings.Join(s.SharedSubnets, ", "))
	}
	return lines
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
