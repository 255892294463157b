package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppw/internal/application"
	"ppw/internal/application/commands"
)

var (
	runFile    string
	runOutDir  string
	runTwoPass bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile one file and prepend its global slots",
	Long: `Compile a single JavaScript file and prepend the global variable slots
recorded in the dependency log to the compiled artifact.

Artifacts are written to --outdir, or to a "ppw" directory next to the input.

Examples:
  ppw run --file src/main.js --outdir build
  ppw run --file src/main.js --two-pass`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCompiler(); err != nil {
			return err
		}
		flow := application.ParseFlow(runTwoPass)
		result, err := commands.NewPreprocessCommand(pipeline, runFile, runOutDir, flow).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		if result.Published != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Published %s\n", result.Published)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "input JavaScript file")
	runCmd.Flags().StringVarP(&runOutDir, "outdir", "o", "", "output directory")
	runCmd.Flags().BoolVar(&runTwoPass, "two-pass", false, "use the legacy two-pass flow")
	_ = runCmd.MarkFlagRequired("file")
}
