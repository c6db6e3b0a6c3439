// Package cli implements the credkarma command tree. Each command maps to a
// view of the application; the route guard runs before every view and the
// command follows its redirect decision.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagURL    string
	flagCfgDir string

	version   = "dev"
	buildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "credkarma",
	Short: "Track credit behaviors, earn karma, unlock rewards",
	Long: `CREDKarma is a terminal client for the CREDKarma gamification service.
Log credit-related behaviors, watch your karma score climb through the
tiers, and unlock rewards once you have the points.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "API base URL (overrides config file and CREDKARMA_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagCfgDir, "config-dir", "", "config directory (default ~/.credkarma)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build version and date",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "CREDKarma Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
	},
}

// Execute runs the command tree. ver and date come from ldflags.
func Execute(ver, date string) {
	if ver != "" {
		version = ver
	}
	if date != "" {
		buildDate = date
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
