package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	wblog "github.com/davetashner/workboard/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for workboard.
var rootCmd = &cobra.Command{
	Use:   "workboard",
	Short: "Render and query interactive work item dashboards",
	Long: `Workboard turns a backlog of work items (beads issues or JSON, YAML and
TOML row files) into a self-contained HTML dashboard with search, owner and
stage filters, sortable tables and collapsible groups. The same filter and
sort logic is available from the command line, against an already rendered
dashboard, and to agents over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		wblog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
