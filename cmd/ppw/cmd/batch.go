package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ppw/internal/adapters/filesystem"
	"ppw/internal/adapters/report"
	"ppw/internal/application"
	"ppw/internal/application/commands"
)

var (
	batchOutDirs string
	batchOutDir  string
	batchTwoPass bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file-list>",
	Short: "Process every file named in a list",
	Long: `Process each input listed one per line in <file-list>.

With --outdirs, output directories are read from a second list and paired
with the inputs line for line. Inputs beyond the end of that list use the
default "ppw" directory next to the input. A failing file never stops the
rest of the batch; the command exits non-zero if any file failed.

Examples:
  ppw batch files.txt --outdir build
  ppw batch files.txt --outdirs dirs.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireCompiler(); err != nil {
			return err
		}
		files, err := os.Open(filesystem.ExpandHome(args[0]))
		if err != nil {
			return fmt.Errorf("failed to open file list: %w", err)
		}
		defer files.Close()

		var dirs io.Reader
		if batchOutDirs != "" {
			f, err := os.Open(batchOutDirs)
			if err != nil {
				return fmt.Errorf("failed to open output directory list: %w", err)
			}
			defer f.Close()
			dirs = f
		}

		entries, err := commands.ParseBatchLists(files, dirs, batchOutDir)
		if err != nil {
			return err
		}
		for i := range entries {
			expandHome(&entries[i].Input, &entries[i].OutputDir)
		}

		result, err := commands.NewBatchCommand(pipeline, entries, application.ParseFlow(batchTwoPass)).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), report.RenderSummary(result))
		if n := result.Failed(); n > 0 {
			return fmt.Errorf("%d of %d file(s) failed", n, len(result.Files))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchOutDirs, "outdirs", "", "file listing one output directory per input")
	batchCmd.Flags().StringVarP(&batchOutDir, "outdir", "o", "", "output directory for every input")
	batchCmd.Flags().BoolVar(&batchTwoPass, "two-pass", false, "use the legacy two-pass flow")
	batchCmd.MarkFlagsMutuallyExclusive("outdirs", "outdir")
}
