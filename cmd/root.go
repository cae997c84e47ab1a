package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/stratus/internal/codec"
	"github.com/vietdv277/stratus/internal/config"
	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/pkg/types"
)

var (
	// Global flags
	planFile string
	profile  string
	region   string
	verbose  bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "stp",
	Short: "Stratus - IP capacity planner for CI runner fleets on AWS",
	Long: `Stratus plans IP-address capacity for CI runner fleets before anything
is launched. A plan holds regions, VPC subnets, and runners; stratus computes
per-runner and total capacity, utilization, and allocation warnings, and
shares the whole plan as a single URL.

Plan Commands:
  stp plan show              # Show the current plan with derived figures
  stp plan set --users 500   # Update plan-wide numbers
  stp region add eu-west-1   # Select a region
  stp subnet add             # Add a subnet to the plan
  stp runner assign <id> ... # Assign subnets to a runner

Sharing:
  stp share                  # Print the shareable plan URL
  stp load <url>             # Load a shared plan

Import from a live account:
  stp import subnets         # Seed subnets from a VPC
  stp import runners         # Seed runners from Auto Scaling Groups

Export:
  stp export pdf -o plan.pdf # Render the plan as PDF, CSV, or text`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVar(&planFile, "plan", "", "plan file to read and write (default ~/.stratus/plan.url)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Bind flags to viper
	_ = viper.BindPFlag("plan", rootCmd.PersistentFlags().Lookup("plan"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("STRATUS")
	viper.AutomaticEnv()

	if planFile == "" {
		planFile = viper.GetString("plan")
	}

	cfg := loadedConfig()

	// Priority for profile: --profile flag > ~/.stratus/config.yaml > AWS_PROFILE env
	if profile == "" {
		if cfg.AWSProfile != "" {
			profile = cfg.AWSProfile
		} else {
			profile = os.Getenv("AWS_PROFILE")
		}
	}

	if region == "" {
		region = cfg.AWSRegion
		if region == "" {
			region = os.Getenv("AWS_REGION")
		}
		if region == "" {
			region = os.Getenv("AWS_DEFAULT_REGION")
		}
	}

	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}

func loadedConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Debugf("config unreadable, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// loadPlan reads the plan file and decodes its token. A missing file means
// a fresh session; an unreadable token is discarded with a warning. Either
// way the caller gets a usable plan.
func loadPlan() types.Plan {
	url, err := config.ReadPlanURL(planFile)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: plan file unreadable, starting from defaults: %v\n", err)
		}
		return plan.Default()
	}

	p, err := codec.Decode(codec.TokenFromInput(url))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: stored plan is corrupt, starting from defaults: %v\n", err)
		return plan.Default()
	}
	return p
}

// savePlan encodes the plan and rewrites the plan file with its share URL,
// replacing whatever was there before.
func savePlan(p types.Plan) error {
	token, err := codec.Encode(p)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	url := codec.BuildURL(loadedConfig().BaseURL, token)
	if err := config.WritePlanURL(planFile, url); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}
