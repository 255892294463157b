package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppw/internal/adapters/filesystem"
	"ppw/internal/application/commands"
)

// DefaultDepLog is the dependency log used when prepend is given only a target
const DefaultDepLog = "../DFSMapping.txt"

var prependRequires bool

var prependCmd = &cobra.Command{
	Use:   "prepend <target> [dep-log]",
	Short: "Prepend global slots from a dependency log to a file",
	Long: `Read the slot count from a dependency log and prepend the matching
global declarations to <target>, in place.

The dependency log defaults to ` + DefaultDepLog + `.

Examples:
  ppw prepend build/main-out.compiled.js build/main_1.dfs.txt
  ppw prepend src/main_1.ppw.js build/main_1.dfs.txt --requires`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		depLog := DefaultDepLog
		if len(args) == 2 {
			depLog = args[1]
		}

		target := filesystem.ExpandHome(args[0])
		result, err := commands.NewAugmentCommand(pipeline.Reader, pipeline.Workspace, target, depLog, prependRequires).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prependCmd)
	prependCmd.Flags().BoolVar(&prependRequires, "requires", false, "also prepend a require statement per recorded path")
}
