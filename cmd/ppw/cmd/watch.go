package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ppw/internal/adapters/watch"
	"ppw/internal/application"
	"ppw/internal/application/commands"
	"ppw/internal/domain"
)

var (
	watchFile   string
	watchOutDir string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild a file whenever it changes",
	Long: `Run the single-pass flow once, then again every time the input file is
saved. Stop with Ctrl-C.

Examples:
  ppw watch --file src/main.js --outdir build`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.ValidateScriptPath("inputFile", watchFile); err != nil {
			return err
		}
		if err := requireCompiler(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rebuild := func(ctx context.Context, _ string) error {
			result, err := commands.NewPreprocessCommand(pipeline, watchFile, watchOutDir, domain.FlowSinglePass).Execute(ctx)
			if err != nil {
				return err
			}
			logger.Info(result.Message)
			return nil
		}

		if err := rebuild(ctx, watchFile); err != nil {
			logger.Error("initial build failed", zap.Error(err))
		}

		w, err := watch.NewWatcher(watchFile, rebuild, watch.WithLogger(logger))
		if err != nil {
			return err
		}
		defer w.Stop()

		if err := w.Start(ctx); err != nil {
			return err
		}
		<-w.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "input JavaScript file")
	watchCmd.Flags().StringVarP(&watchOutDir, "outdir", "o", "", "output directory")
	_ = watchCmd.MarkFlagRequired("file")
}
