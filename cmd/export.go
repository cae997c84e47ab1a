package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <pdf|csv|text>",
	Short: "Export the plan as a report",
	Long: `Render the plan and its derived figures into a report artifact: a
fixed-layout PDF, a flat CSV, or a plain-text summary.

Examples:
  stp export pdf
  stp export csv -o ~/reports/q3-plan.csv
  stp export text -o -`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: report.Formats,
	RunE:      runExport,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default capacity-plan.<ext>)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]
	p := loadPlan()

	// "-o -" streams text and CSV to stdout.
	if exportOutput == "-" {
		switch format {
		case "csv":
			return report.WriteCSV(cmd.OutOrStdout(), p)
		case "text":
			return report.WriteText(cmd.OutOrStdout(), p)
		default:
			return fmt.Errorf("format %s cannot stream to stdout", format)
		}
	}

	path := exportOutput
	if path == "" {
		path = report.DefaultPath(format)
	}

	if err := report.Export(format, path, p); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
