package ui

import (
	"fmt"
	"strings"

	pkgtypes "github.com/vietdv277/stratus/pkg/types"
)

// SelectFleet displays an interactive selector for runner fleets
func SelectFleet(fleets []pkgtypes.RunnerFleet) (*pkgtypes.RunnerFleet, error) {
	spec := selectorSpec[pkgtypes.RunnerFleet]{
		noun:   "fleets",
		widths: []int{36, 16},
		matches: func(f pkgtypes.RunnerFleet, query string) bool {
			return strings.Contains(strings.ToLower(f.Name), query)
		},
		columns: func(f pkgtypes.RunnerFleet) []cell {
			return []cell{
				{f.Name, NameStyle},
				{fmt.Sprintf("desired %d", f.DesiredCapacity), ValueStyle},
				{strings.Join(f.AZs, ", "), MutedStyle},
			}
		},
		details: func(f pkgtypes.RunnerFleet) []detail {
			return []detail{
				{"Name:", f.Name, NameStyle},
				{"Desired:", fmt.Sprintf("%d", f.DesiredCapacity), ValueStyle},
				{"Min/Max:", fmt.Sprintf("%d / %d", f.MinSize, f.MaxSize), MutedStyle},
				{"Status:", f.Status, OKStyle},
				{"AZs:", strings.Join(f.AZs, ", "), ValueStyle},
				{"Subnets:", strings.Join(f.SubnetIDs, ", "), MutedStyle},
			}
		},
	}

	return runSelector(spec, fleets)
}
