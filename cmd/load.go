package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/codec"
	"github.com/vietdv277/stratus/internal/plan"
)

var loadCmd = &cobra.Command{
	Use:   "load <token-or-url>",
	Short: "Load a shared plan",
	Long: `Replace the current plan with one decoded from a share URL or a bare
token. A token that cannot be read is discarded with a warning and the
defaults are loaded instead; loading never fails outright.

Examples:
  stp load 'https://stratus.example.com/plan?state=eyJ0b3RhbFVzZXJzIjo...'
  stp load eyJ0b3RhbFVzZXJzIjo...`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	p, err := codec.Decode(codec.TokenFromInput(args[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: shared plan is unreadable, loading defaults: %v\n", err)
		p = plan.Default()
	}

	if err := savePlan(p); err != nil {
		return err
	}

	fmt.Printf("Loaded plan: %d users, %d regions, %d subnets, %d runners\n",
		p.TotalUsers, len(p.SelectedRegions), len(p.Subnets), len(p.Runners))
	return nil
}
