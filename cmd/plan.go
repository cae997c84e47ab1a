package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/ipcalc"
	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/internal/ui"
	"github.com/vietdv277/stratus/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the capacity plan",
	Long:  `Show the current plan with its derived figures, reset it, or update the plan-wide numbers.`,
}

var planInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Start a fresh plan",
	Long: `Discard the current plan and start from the defaults.

Examples:
  stp plan init                       # Fresh default plan
  stp plan init --users 500           # Fresh plan with 500 expected users`,
	RunE: runPlanInit,
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan and its derived figures",
	Long: `Print the plan-wide numbers, the subnet and runner tables, the capacity
summary, and any allocation warnings.`,
	RunE: runPlanShow,
}

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update plan-wide numbers",
	Long: `Update the expected user count, environments per user, availability-zone
count, or VPC CIDR size. Values outside their bounds are clamped, not rejected.

Examples:
  stp plan set --users 500
  stp plan set --envs 3 --azs 2
  stp plan set --vpc-cidr 20`,
	RunE: runPlanSet,
}

var planSizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List valid subnet sizes for the VPC",
	Long:  `List every subnet prefix length usable inside the plan's VPC block, with its usable-address count.`,
	RunE:  runPlanSizes,
}

var (
	// plan set / init flags
	setUsers   int
	setEnvs    int
	setAZs     int
	setVPCCIDR int
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.AddCommand(planInitCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planSizesCmd)

	for _, c := range []*cobra.Command{planInitCmd, planSetCmd} {
		c.Flags().IntVar(&setUsers, "users", -1, "total expected users")
		c.Flags().IntVar(&setEnvs, "envs", -1, "environments per user")
		c.Flags().IntVar(&setAZs, "azs", -1, "availability-zone count")
		c.Flags().IntVar(&setVPCCIDR, "vpc-cidr", -1, "VPC CIDR prefix size")
	}
}

func runPlanInit(cmd *cobra.Command, args []string) error {
	p := plan.Default()
	applySetFlags(&p)

	if err := savePlan(p); err != nil {
		return err
	}
	fmt.Println("Started a fresh plan")
	return nil
}

func runPlanShow(cmd *cobra.Command, args []string) error {
	p := loadPlan()
	s := plan.Summarize(p)

	fmt.Println()
	fmt.Printf("Users:     %d (x%d environments)\n", p.TotalUsers, p.EnvsPerUser)
	fmt.Printf("AZs:       %d\n", p.AZCount)
	fmt.Printf("VPC CIDR:  /%d\n", p.VPCCIDRSize)
	fmt.Printf("Regions:   %s\n", regionList(p.SelectedRegions))
	fmt.Println()

	ui.PrintPlanSubnetTable(p)
	fmt.Println()
	ui.PrintRunnerTable(p)
	ui.PrintSummary(p, s)
	ui.PrintWarnings(p, s)
	return nil
}

func runPlanSet(cmd *cobra.Command, args []string) error {
	if setUsers < 0 && setEnvs < 0 && setAZs < 0 && setVPCCIDR < 0 {
		return fmt.Errorf("nothing to set: use --users, --envs, --azs, or --vpc-cidr")
	}

	p := loadPlan()
	applySetFlags(&p)

	if err := savePlan(p); err != nil {
		return err
	}
	fmt.Printf("Plan updated: %d users, %d envs/user, %d AZs, /%d VPC\n",
		p.TotalUsers, p.EnvsPerUser, p.AZCount, p.VPCCIDRSize)
	return nil
}

func runPlanSizes(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	sizes := ipcalc.ValidSubnetSizes(p.VPCCIDRSize)
	if len(sizes) == 0 {
		fmt.Printf("No subnet sizes fit inside a /%d VPC\n", p.VPCCIDRSize)
		return nil
	}

	fmt.Printf("Subnet sizes for a /%d VPC:\n", p.VPCCIDRSize)
	for _, s := range sizes {
		fmt.Printf("  %s\n", s.Label())
	}
	return nil
}

func applySetFlags(p *types.Plan) {
	if setUsers >= 0 {
		plan.SetTotalUsers(p, setUsers)
	}
	if setEnvs >= 0 {
		plan.SetEnvsPerUser(p, setEnvs)
	}
	if setAZs >= 0 {
		plan.SetAZCount(p, setAZs)
	}
	if setVPCCIDR >= 0 {
		plan.SetVPCCIDRSize(p, setVPCCIDR)
	}
}

func regionList(regions []string) string {
	if len(regions) == 0 {
		return "(none)"
	}
	return strings.Join(regions, ", ")
}
