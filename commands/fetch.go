package commands

import (
	"fmt"
	"io"

	"sjsage522/zenlesscollector/internal/collector"
	"sjsage522/zenlesscollector/server"
	"sjsage522/zenlesscollector/services/worker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var fetchOrder string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the active codes once and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := setup()
		if err != nil {
			return err
		}
		defer services.Cleanup()

		result := services.Worker.RunOnce(cmd.Context())
		renderResult(cmd.OutOrStdout(), result, fetchOrder, services.Config.CurrencyName)
		return nil
	},
}

// renderResult prints the codes of a result as a table followed by the new codes
func renderResult(w io.Writer, result *worker.Result, order string, currency string) {
	if currency == "" {
		currency = collector.DefaultCurrency
	}

	if len(result.Codes) == 0 {
		fmt.Fprintln(w, "No Active Codes Found :(")
	} else {
		fmt.Fprintf(w, "Found %d Active Codes!\n", len(result.Codes))

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"#", "Code", currency})
		codes := collector.SortByReward(result.Codes, order == server.OrderAscending)
		for i, c := range codes {
			t.AppendRow(table.Row{i + 1, c.Code, c.Reward})
		}
		t.Render()
	}

	if len(result.NewCodes) > 0 {
		fmt.Fprintln(w, "🎉 New Codes Detected!")
		for _, c := range result.NewCodeEntries() {
			fmt.Fprintf(w, "  %s - %d %s\n", c.Code, c.Reward, currency)
		}
	}

	if result.SaveErr != nil {
		fmt.Fprintf(w, "Warning: could not save the code snapshot: %v\n", result.SaveErr)
	}
}

func init() {
	fetchCmd.Flags().StringVar(&fetchOrder, "order", server.OrderDescending, "sort order of the reward column (desc|asc)")
	rootCmd.AddCommand(fetchCmd)
}
