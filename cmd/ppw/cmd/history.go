package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppw/internal/adapters/report"
	"ppw/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long: `List the most recent runs stored in the history database.

History is recorded only when --history or PPW_HISTORY_DB is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := commands.NewListHistoryCommand(history, historyLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.RenderHistory(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "maximum number of runs to show")
}
