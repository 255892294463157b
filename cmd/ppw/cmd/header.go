package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"ppw/internal/application/commands"
)

var (
	headerRequires bool
	headerCopy     bool
)

var headerCmd = &cobra.Command{
	Use:   "header <dep-log>",
	Short: "Print the header a dependency log produces",
	Long: `Print the global declarations, and with --requires the require block,
that would be prepended for <dep-log>. No file is modified.

Examples:
  ppw header build/main_1.dfs.txt
  ppw header build/main_1.dfs.txt --requires --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewHeaderCommand(pipeline.Reader, args[0], headerRequires).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), result.Header)
		if headerCopy {
			if err := clipboard.WriteAll(result.Header); err != nil {
				return fmt.Errorf("failed to copy header: %w", err)
			}
			logger.Info("header copied to clipboard")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(headerCmd)
	headerCmd.Flags().BoolVar(&headerRequires, "requires", false, "include a require statement per recorded path")
	headerCmd.Flags().BoolVar(&headerCopy, "copy", false, "copy the header to the clipboard")
}
