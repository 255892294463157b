package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppw/internal/adapters/filesystem"
	"ppw/internal/adapters/node"
	"ppw/internal/application/commands"
)

var verifyOutDir string

var verifyCmd = &cobra.Command{
	Use:   "verify <input>",
	Short: "Check the compiled artifact prints what the original prints",
	Long: `Run the original script and its compiled artifact with node and compare
their standard output line by line and their exit status. Run "ppw run" first.

Examples:
  ppw verify src/main.js --outdir build`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := node.NewRunner(cfg.Compiler.NodeBinary)
		result, err := commands.NewVerifyCommand(runner, filesystem.ExpandHome(args[0]), verifyOutDir).Execute(cmd.Context())
		if result != nil && result.Diff != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Output differs (-original +compiled):\n%s", result.Diff)
		}
		if result != nil && result.OriginalExit != result.CompiledExit {
			fmt.Fprintf(cmd.OutOrStdout(), "Exit status differs: original %d, compiled %d\n", result.OriginalExit, result.CompiledExit)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Outputs match for %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&verifyOutDir, "outdir", "o", "", "output directory")
}
