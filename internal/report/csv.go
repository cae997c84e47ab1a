package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/pkg/types"
)

var csvHeader = []string{
	"Record Type", "Name", "Region", "AZ", "Subnet/CIDR",
	"Available IPs", "Planned Users", "Capacity",
}

// WriteCSV renders one row per subnet and one row per runner under a shared
// column schema. Columns that do not apply to a record type stay blank:
// subnets carry their CIDR and address count, runners carry their subnet
// names, planned demand, and capacity.
func WriteCSV(w io.Writer, p types.Plan) error {
	cw := csv.NewWriter(w)

	rows := [][]string{csvHeader}
	for _, s := range p.Subnets {
		rows = append(rows, []string{
			"Subnet", s.Name, s.Region, s.AZ,
			fmt.Sprintf("/%d", s.CIDRSize), strconv.Itoa(s.AvailableIPs), "", "",
		})
	}
	for _, r := range p.Runners {
		rows = append(rows, []string{
			"Runner", r.Name, r.Region, "",
			strings.Join(plan.SubnetNames(p, r.SubnetIDs), ", "), "",
			strconv.Itoa(plan.RunnerPlanned(p, r)), strconv.Itoa(r.Capacity),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return &ExportError{Format: "csv", cause: err}
	}
	return nil
}
