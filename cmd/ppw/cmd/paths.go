package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppw/internal/adapters/filesystem"
	"ppw/internal/adapters/report"
	"ppw/internal/application"
)

var pathsOutDir string

var pathsCmd = &cobra.Command{
	Use:   "paths <input>",
	Short: "Show the artifact paths for an input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := filesystem.ExpandHome(args[0])
		if err := application.ValidateScriptPath("inputFile", input); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.RenderArtifacts(application.ResolveArtifacts(input, pathsOutDir)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	pathsCmd.Flags().StringVarP(&pathsOutDir, "outdir", "o", "", "output directory")
}
