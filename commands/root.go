package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zenlesscollector",
	Short: "zenlesscollector fetches active Zenless Zone Zero redemption codes.",
	Long: `zenlesscollector scrapes the redemption code table of the wiki, keeps the
active codes with their Polychrome reward and reports codes not seen in the
previous run.`,
	SilenceUsage: true,
}

// ExecuteContext runs the root command
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
