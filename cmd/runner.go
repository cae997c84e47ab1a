package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/internal/ui"
	"github.com/vietdv277/stratus/pkg/types"
)

var runnerCmd = &cobra.Command{
	Use:   "runner",
	Short: "Manage plan runners",
	Long: `Add, update, remove, and list the runner pools users are assigned to.
Adding or removing a runner redistributes the plan-wide user count evenly;
user counts edited by hand stick until the next add or remove.`,
}

var runnerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a runner",
	Long: `Add a runner to the plan. The plan-wide user count is redistributed
evenly over all runners, existing ones included. Requires at least one
selected region.`,
	RunE: runRunnerAdd,
}

var runnerRmCmd = &cobra.Command{
	Use:   "rm <id-or-name>",
	Short: "Remove a runner",
	Long: `Remove a runner and redistribute the plan-wide user count over the
remaining ones. The last runner cannot be removed.`,
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"remove"},
	RunE:    runRunnerRm,
}

var runnerSetCmd = &cobra.Command{
	Use:   "set <id-or-name>",
	Short: "Update a runner",
	Long: `Update a runner's name, region, or user count. A user count set here is
sticky: it survives until a runner is added or removed.

Examples:
  stp runner set runner-1 --users 40
  stp runner set runner-2 --region eu-west-1`,
	Args: cobra.ExactArgs(1),
	RunE: runRunnerSet,
}

var runnerAssignCmd = &cobra.Command{
	Use:   "assign <id-or-name> [subnet-id...]",
	Short: "Replace a runner's subnet assignment",
	Long: `Replace the set of subnets a runner draws addresses from and recompute
its capacity. With no subnet ids the assignment is cleared. Subnets outside
the runner's region are dropped.

Examples:
  stp runner assign runner-1 3f2a... 9c1b...
  stp runner assign runner-1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRunnerAssign,
}

var runnerLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List plan runners",
	RunE:  runRunnerLs,
}

var (
	// runner set flags
	runnerName   string
	runnerRegion string
	runnerUsers  int
)

func init() {
	rootCmd.AddCommand(runnerCmd)

	runnerCmd.AddCommand(runnerAddCmd)
	runnerCmd.AddCommand(runnerRmCmd)
	runnerCmd.AddCommand(runnerSetCmd)
	runnerCmd.AddCommand(runnerAssignCmd)
	runnerCmd.AddCommand(runnerLsCmd)

	runnerSetCmd.Flags().StringVar(&runnerName, "name", "", "display name")
	runnerSetCmd.Flags().StringVar(&runnerRegion, "region", "", "region code")
	runnerSetCmd.Flags().IntVar(&runnerUsers, "users", -1, "assigned user count")
}

func runRunnerAdd(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	if len(p.SelectedRegions) == 0 {
		return fmt.Errorf("no region selected: run 'stp region add <code>' first")
	}

	before := len(p.Runners)
	plan.AddRunner(&p)
	if len(p.Runners) == before {
		return fmt.Errorf("failed to add runner")
	}

	if err := savePlan(p); err != nil {
		return err
	}

	r := p.Runners[len(p.Runners)-1]
	fmt.Printf("Added %s (%s, %d users)\n", r.Name, r.Region, r.Users)
	return nil
}

func runRunnerRm(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	r, err := resolveRunner(p, args[0])
	if err != nil {
		return err
	}
	if len(p.Runners) <= 1 {
		return fmt.Errorf("cannot remove the last runner")
	}

	plan.RemoveRunner(&p, r.ID)
	if err := savePlan(p); err != nil {
		return err
	}
	fmt.Printf("Removed %s, users redistributed over %d runners\n", r.Name, len(p.Runners))
	return nil
}

func runRunnerSet(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	r, err := resolveRunner(p, args[0])
	if err != nil {
		return err
	}

	var patch plan.RunnerPatch
	if cmd.Flags().Changed("name") {
		patch.Name = &runnerName
	}
	if cmd.Flags().Changed("region") {
		patch.Region = &runnerRegion
	}
	if cmd.Flags().Changed("users") {
		patch.Users = &runnerUsers
	}
	if patch == (plan.RunnerPatch{}) {
		return fmt.Errorf("nothing to set: use --name, --region, or --users")
	}

	plan.UpdateRunner(&p, r.ID, patch)
	if err := savePlan(p); err != nil {
		return err
	}

	updated, _ := plan.FindRunner(p, r.ID)
	fmt.Printf("Updated %s (%s, %d users, capacity %d)\n", updated.Name, updated.Region, updated.Users, updated.Capacity)
	return nil
}

func runRunnerAssign(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	r, err := resolveRunner(p, args[0])
	if err != nil {
		return err
	}

	plan.UpdateRunnerSubnets(&p, r.ID, args[1:])
	if err := savePlan(p); err != nil {
		return err
	}

	updated, _ := plan.FindRunner(p, r.ID)
	fmt.Printf("%s now draws from %d subnets, capacity %d\n", updated.Name, len(updated.SubnetIDs), updated.Capacity)
	return nil
}

func runRunnerLs(cmd *cobra.Command, args []string) error {
	p := loadPlan()
	ui.PrintRunnerTable(p)
	return nil
}

// resolveRunner finds a runner by id, falling back to its display name.
func resolveRunner(p types.Plan, idOrName string) (types.Runner, error) {
	if r, ok := plan.FindRunner(p, idOrName); ok {
		return r, nil
	}
	for _, r := range p.Runners {
		if r.Name == idOrName {
			return r, nil
		}
	}
	return types.Runner{}, fmt.Errorf("runner %s not found", idOrName)
}
