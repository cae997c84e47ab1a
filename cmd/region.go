package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/plan"
)

var regionCmd = &cobra.Command{
	Use:   "region",
	Short: "Manage selected regions",
	Long: `Select or deselect the AWS regions the plan spans. Deselecting a region
moves its runners to the first remaining region and clears their subnet
assignments; deselecting the last region clears all runners.`,
}

var regionAddCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Select a region",
	Long: `Add a region to the plan's selection.

Examples:
  stp region add eu-west-1
  stp region add us-east-1`,
	Args: cobra.ExactArgs(1),
	RunE: runRegionAdd,
}

var regionRmCmd = &cobra.Command{
	Use:     "rm <code>",
	Short:   "Deselect a region",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"remove"},
	RunE:    runRegionRm,
}

var regionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List selected regions",
	RunE:  runRegionLs,
}

func init() {
	rootCmd.AddCommand(regionCmd)

	regionCmd.AddCommand(regionAddCmd)
	regionCmd.AddCommand(regionRmCmd)
	regionCmd.AddCommand(regionLsCmd)
}

func runRegionAdd(cmd *cobra.Command, args []string) error {
	code := args[0]
	p := loadPlan()

	if plan.RegionSelected(p, code) {
		fmt.Printf("Region %s already selected\n", code)
		return nil
	}

	plan.ToggleRegion(&p, code)
	if err := savePlan(p); err != nil {
		return err
	}
	fmt.Printf("Selected region %s\n", code)
	return nil
}

func runRegionRm(cmd *cobra.Command, args []string) error {
	code := args[0]
	p := loadPlan()

	if !plan.RegionSelected(p, code) {
		fmt.Printf("Region %s is not selected\n", code)
		return nil
	}

	plan.ToggleRegion(&p, code)
	if err := savePlan(p); err != nil {
		return err
	}
	fmt.Printf("Deselected region %s\n", code)
	return nil
}

func runRegionLs(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	if len(p.SelectedRegions) == 0 {
		fmt.Println("No regions selected")
		return nil
	}

	for _, code := range p.SelectedRegions {
		fmt.Println(code)
	}
	return nil
}
