package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/aws"
	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/internal/ui"
	"github.com/vietdv277/stratus/pkg/provider"
	"github.com/vietdv277/stratus/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed the plan from a live AWS account",
	Long: `Seed the plan from live resources: subnets from a VPC, runners from
Auto Scaling Groups. Imported items keep their AWS ids, so re-importing
skips what the plan already holds, and existing runner allocations are
never redistributed.`,
}

var importSubnetsCmd = &cobra.Command{
	Use:   "subnets",
	Short: "Import the subnets of a VPC",
	Long: `Import every subnet of a VPC into the plan. The subnet's prefix length
and zone come from the live resource; its available-address count is the
planning formula, not the live EC2 figure.

If no VPC id is given, an interactive selector is shown.

Examples:
  stp import subnets                  # Interactive VPC selector
  stp import subnets --vpc vpc-12345678`,
	RunE: runImportSubnets,
}

var importRunnersCmd = &cobra.Command{
	Use:   "runners [name]",
	Short: "Import Auto Scaling Groups as runners",
	Long: `Import an Auto Scaling Group as a plan runner: its desired capacity
becomes the runner's user count, its VPCZoneIdentifier subnets become the
runner's subnet assignment where the plan knows them.

If no name is given, an interactive selector is shown.

Examples:
  stp import runners                  # Interactive fleet selector
  stp import runners ci-runners-prod
  stp import runners --filter ci      # Narrow the selector by name`,
	RunE: runImportRunners,
}

var (
	// import subnets flags
	importVPCID string

	// import runners flags
	importFleetFilter string
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.AddCommand(importSubnetsCmd)
	importCmd.AddCommand(importRunnersCmd)

	importSubnetsCmd.Flags().StringVar(&importVPCID, "vpc", "", "VPC id to import from")
	importRunnersCmd.Flags().StringVar(&importFleetFilter, "filter", "", "filter fleets by name pattern")
}

func newAWSClient() (*aws.Client, error) {
	client, err := aws.NewClient(
		context.Background(),
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}

	identity, err := client.GetCallerIdentity()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller identity: %w", err)
	}
	fmt.Printf("Account %s (%s)\n\n", identity.Account, identity.Arn)

	return client, nil
}

func runImportSubnets(cmd *cobra.Command, args []string) error {
	client, err := newAWSClient()
	if err != nil {
		return err
	}

	subnets, err := fetchSubnets(client, importVPCID)
	if err != nil {
		return err
	}
	if len(subnets) == 0 {
		fmt.Println("No subnets found in this VPC")
		return nil
	}

	ui.PrintAWSSubnetTable(subnets)

	converted := make([]types.Subnet, 0, len(subnets))
	for _, s := range subnets {
		converted = append(converted, aws.ToPlanSubnet(s))
	}

	p := loadPlan()
	added, _ := plan.Import(&p, converted, nil)
	if err := savePlan(p); err != nil {
		return err
	}

	fmt.Printf("\nImported %d subnets (%d already in the plan)\n", added, len(converted)-added)
	return nil
}

func fetchSubnets(source provider.SubnetSource, vpcID string) ([]types.AWSSubnet, error) {
	if vpcID == "" {
		vpcs, err := source.ListVPCs()
		if err != nil {
			return nil, fmt.Errorf("failed to list VPCs: %w", err)
		}

		selected, err := ui.SelectVPC(vpcs)
		if err != nil {
			return nil, err
		}
		vpcID = selected.ID
	}

	subnets, err := source.ListSubnets(vpcID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subnets: %w", err)
	}
	return subnets, nil
}

func runImportRunners(cmd *cobra.Command, args []string) error {
	client, err := newAWSClient()
	if err != nil {
		return err
	}

	fleet, err := pickFleet(client, args)
	if err != nil {
		return err
	}

	ui.PrintFleetTable([]types.RunnerFleet{*fleet})

	p := loadPlan()
	_, added := plan.Import(&p, nil, []types.Runner{aws.ToPlanRunner(*fleet, client.Region())})
	if err := savePlan(p); err != nil {
		return err
	}

	if added == 0 {
		fmt.Printf("\nRunner %s is already in the plan\n", fleet.Name)
		return nil
	}
	fmt.Printf("\nImported %s as a runner with %d users\n", fleet.Name, fleet.DesiredCapacity)
	return nil
}

func pickFleet(source provider.FleetSource, args []string) (*types.RunnerFleet, error) {
	if len(args) > 0 {
		fleet, err := source.DescribeFleet(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to describe fleet: %w", err)
		}
		return fleet, nil
	}

	fleets, err := source.ListFleets(importFleetFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list fleets: %w", err)
	}
	return ui.SelectFleet(fleets)
}
