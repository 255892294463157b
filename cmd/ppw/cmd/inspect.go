package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppw/internal/adapters/editor"
	"ppw/internal/adapters/filesystem"
	"ppw/internal/application/commands"
	"ppw/internal/domain"
)

var (
	inspectRole   string
	inspectOutDir string
	inspectPrint  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Open an artifact of an input file in $EDITOR",
	Long: `Open one of the artifacts produced for <input> in your editor.

Roles: input, copy, compiled, log, log2, deplog, deplog2.

Examples:
  ppw inspect src/main.js
  ppw inspect src/main.js --role deplog --outdir build
  ppw inspect src/main.js --print`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := commands.NewInspectCommand(editor.NewOpener(), filesystem.ExpandHome(args[0]), inspectOutDir, domain.ArtifactRole(inspectRole))
		c.PrintOnly = inspectPrint
		result, err := c.Execute(cmd.Context())
		if err != nil {
			return err
		}
		if inspectPrint {
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectRole, "role", "r", string(domain.RoleCompiled), "artifact to open")
	inspectCmd.Flags().StringVarP(&inspectOutDir, "outdir", "o", "", "output directory")
	inspectCmd.Flags().BoolVarP(&inspectPrint, "print", "p", false, "print the editor command instead of running it")
}
