package ui

import (
	"strings"

	pkgtypes "github.com/vietdv277/stratus/pkg/types"
)

// SelectVPC displays an interactive selector for VPCs
func SelectVPC(vpcs []pkgtypes.VPC) (*pkgtypes.VPC, error) {
	spec := selectorSpec[pkgtypes.VPC]{
		noun:   "VPCs",
		widths: []int{24, 18},
		matches: func(v pkgtypes.VPC, query string) bool {
			return strings.Contains(strings.ToLower(v.Name), query) ||
				strings.Contains(strings.ToLower(v.ID), query) ||
				strings.Contains(strings.ToLower(v.CIDR), query)
		},
		columns: func(v pkgtypes.VPC) []cell {
			return []cell{
				{v.ID, IDStyle},
				{v.CIDR, ValueStyle},
				{v.Name, NameStyle},
			}
		},
		details: func(v pkgtypes.VPC) []detail {
			return []detail{
				{"ID:", v.ID, IDStyle},
				{"Name:", v.Name, NameStyle},
				{"CIDR:", v.CIDR, ValueStyle},
				{"State:", v.State, OKStyle},
				{"Default:", formatBool(v.IsDefault), MutedStyle},
				{"Owner:", v.OwnerID, MutedStyle},
			}
		},
	}

	return runSelector(spec, vpcs)
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
