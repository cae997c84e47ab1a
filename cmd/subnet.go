package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/internal/ui"
)

var subnetCmd = &cobra.Command{
	Use:   "subnet",
	Short: "Manage plan subnets",
	Long:  `Add, update, remove, and list the subnets the plan draws IP capacity from.`,
}

var subnetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a subnet",
	Long: `Add a subnet to the plan. The new subnet lands in the first selected
region, zone a, one bit narrower than the VPC block; adjust it with
'stp subnet set'. Requires at least one selected region.`,
	RunE: runSubnetAdd,
}

var subnetRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Short:   "Remove a subnet",
	Long:    `Remove a subnet from the plan. Runners referencing it lose that capacity.`,
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"remove"},
	RunE:    runSubnetRm,
}

var subnetSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update a subnet",
	Long: `Update a subnet's name, region, zone, or CIDR size. A CIDR change
recomputes the subnet's available addresses.

Examples:
  stp subnet set 3f2a... --name ci-private-a
  stp subnet set 3f2a... --cidr 24 --az b`,
	Args: cobra.ExactArgs(1),
	RunE: runSubnetSet,
}

var subnetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List plan subnets",
	RunE:  runSubnetLs,
}

var (
	// subnet set flags
	subnetName   string
	subnetRegion string
	subnetAZ     string
	subnetCIDR   int
)

func init() {
	rootCmd.AddCommand(subnetCmd)

	subnetCmd.AddCommand(subnetAddCmd)
	subnetCmd.AddCommand(subnetRmCmd)
	subnetCmd.AddCommand(subnetSetCmd)
	subnetCmd.AddCommand(subnetLsCmd)

	subnetSetCmd.Flags().StringVar(&subnetName, "name", "", "display name")
	subnetSetCmd.Flags().StringVar(&subnetRegion, "region", "", "region code")
	subnetSetCmd.Flags().StringVar(&subnetAZ, "az", "", "availability-zone letter (a-c)")
	subnetSetCmd.Flags().IntVar(&subnetCIDR, "cidr", -1, "CIDR prefix size")
}

func runSubnetAdd(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	if len(p.SelectedRegions) == 0 {
		return fmt.Errorf("no region selected: run 'stp region add <code>' first")
	}

	before := len(p.Subnets)
	plan.AddSubnet(&p)
	if len(p.Subnets) == before {
		return fmt.Errorf("failed to add subnet")
	}

	if err := savePlan(p); err != nil {
		return err
	}

	s := p.Subnets[len(p.Subnets)-1]
	fmt.Printf("Added %s (%s, %s%s, /%d, %d IPs)\n", s.Name, s.ID, s.Region, s.AZ, s.CIDRSize, s.AvailableIPs)
	return nil
}

func runSubnetRm(cmd *cobra.Command, args []string) error {
	id := args[0]
	p := loadPlan()

	s, ok := plan.FindSubnet(p, id)
	if !ok {
		return fmt.Errorf("subnet %s not found", id)
	}

	plan.RemoveSubnet(&p, id)
	if err := savePlan(p); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", s.Name)
	return nil
}

func runSubnetSet(cmd *cobra.Command, args []string) error {
	id := args[0]
	p := loadPlan()

	if _, ok := plan.FindSubnet(p, id); !ok {
		return fmt.Errorf("subnet %s not found", id)
	}

	var patch plan.SubnetPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &subnetName
	}
	if cmd.Flags().Changed("region") {
		patch.Region = &subnetRegion
	}
	if cmd.Flags().Changed("az") {
		patch.AZ = &subnetAZ
	}
	if cmd.Flags().Changed("cidr") {
		patch.CIDRSize = &subnetCIDR
	}
	if patch == (plan.SubnetPatch{}) {
		return fmt.Errorf("nothing to set: use --name, --region, --az, or --cidr")
	}

	plan.UpdateSubnet(&p, id, patch)
	if err := savePlan(p); err != nil {
		return err
	}

	s, _ := plan.FindSubnet(p, id)
	fmt.Printf("Updated %s (%s%s, /%d, %d IPs)\n", s.Name, s.Region, s.AZ, s.CIDRSize, s.AvailableIPs)
	return nil
}

func runSubnetLs(cmd *cobra.Command, args []string) error {
	p := loadPlan()
	ui.PrintPlanSubnetTable(p)
	return nil
}
