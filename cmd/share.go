package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietdv277/stratus/internal/codec"
	"github.com/vietdv277/stratus/internal/config"
	"github.com/vietdv277/stratus/internal/shorten"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the shareable plan URL",
	Long: `Encode the current plan into a URL anyone can load with 'stp load'.
When a link shortener is configured, the short form is printed; if
shortening fails the full URL is printed instead.

Examples:
  stp share
  stp share --no-shorten`,
	RunE: runShare,
}

var shareNoShorten bool

func init() {
	rootCmd.AddCommand(shareCmd)

	shareCmd.Flags().BoolVar(&shareNoShorten, "no-shorten", false, "skip the link shortener")
}

func runShare(cmd *cobra.Command, args []string) error {
	p := loadPlan()

	token, err := codec.Encode(p)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	cfg := loadedConfig()
	url := codec.BuildURL(cfg.BaseURL, token)

	if err := config.WritePlanURL(planFile, url); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}

	if !shareNoShorten && cfg.ShortenerURL != "" {
		client := shorten.NewClient(shorten.Config{
			Endpoint: cfg.ShortenerURL,
			Timeout:  cfg.ShortenerTimeout,
		}, log)

		short, err := client.Shorten(context.Background(), url)
		if err == nil {
			fmt.Println(short)
			return nil
		}
		fmt.Fprintf(os.Stderr, "Warning: could not shorten link, using the full URL: %v\n", err)
	}

	fmt.Println(url)
	return nil
}
