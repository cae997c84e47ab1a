package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/pkg/types"
)

// WritePDF renders the plan to a fixed-layout PDF document at path. The
// file handle is closed as part of writing; nothing stays open afterwards.
func WritePDF(path string, p types.Plan) error {
	s := plan.Summarize(p)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdfSummaryBlock(pdf, "Plan Summary", [][2]string{
		{"Total users", fmt.Sprintf("%d", p.TotalUsers)},
		{"Environments per user", fmt.Sprintf("%d", p.EnvsPerUser)},
		{"Availability zones", fmt.Sprintf("%d", p.AZCount)},
		{"VPC CIDR", fmt.Sprintf("/%d", p.VPCCIDRSize)},
		{"Regions", joinOrNone(p.SelectedRegions)},
	})

	pdfTable(pdf, "Subnets",
		[]string{"Name", "Region", "AZ", "CIDR", "Available IPs"},
		[]float64{45, 35, 15, 20, 35},
		subnetRows(p))

	pdfTable(pdf, "Runners",
		[]string{"Name", "Region", "Users", "Planned", "Capacity"},
		[]float64{45, 35, 20, 25, 25},
		runnerRows(p))

	capacity := [][2]string{
		{"Planned utilization", fmt.Sprintf("%d", s.TotalPlanned)},
		{"Allocated users", fmt.Sprintf("%d", s.AllocatedUsers)},
		{"Total capacity", fmt.Sprintf("%d", s.TotalCapacity)},
		{"Utilization", fmt.Sprintf("%d%%", s.UtilizationPct)},
	}
	pdfSummaryBlock(pdf, "Capacity", capacity)

	if warnings := warningLines(p, s); len(warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Warnings", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range warnings {
			pdf.MultiCell(0, 6, line, "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &ExportError{Format: "pdf", cause: err}
	}
	return nil
}

func subnetRows(p types.Plan) [][]string {
	rows := make([][]string, 0, len(p.Subnets))
	for _, s := range p.Subnets {
		rows = append(rows, []string{
			s.Name, s.Region, s.AZ,
			fmt.Sprintf("/%d", s.CIDRSize),
			fmt.Sprintf("%d", s.AvailableIPs),
		})
	}
	return rows
}

func runnerRows(p types.Plan) [][]string {
	rows := make([][]string, 0, len(p.Runners))
	for _, r := range p.Runners {
		rows = append(rows, []string{
			r.Name, r.Region,
			fmt.Sprintf("%d", r.Users),
			fmt.Sprintf("%d", plan.RunnerPlanned(p, r)),
			fmt.Sprintf("%d", r.Capacity),
		})
	}
	return rows
}

func pdfSummaryBlock(pdf *fpdf.Fpdf, heading string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(60, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func pdfTable(pdf *fpdf.Fpdf, heading string, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(rows) == 0 {
		pdf.CellFormat(sum(widths), 7, "(none)", "1", 1, "L", false, 0, "")
	}
	for _, row := range rows {
		for i, cell := range row {
			// Keep long names from spilling into the next column.
			if len(cell) > 40 {
				cell = strings.TrimSpace(cell[:37]) + "..."
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func sum(widths []float64) float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	return total
}
