package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ppw/internal/adapters/closure"
	"ppw/internal/adapters/filesystem"
	"ppw/internal/adapters/s3"
	"ppw/internal/adapters/sqlite"
	"ppw/internal/application"
	"ppw/internal/application/commands"
	"ppw/internal/config"
	"ppw/internal/logging"
	"ppw/internal/ports"
)

var (
	configPath      string
	jarPath         string
	runtimeBin      string
	nodeSource      string
	languageOut     string
	resolveBuiltins bool
	verbose         bool
	historyPath     string

	cfg      *config.Config
	logger   *zap.Logger
	compiler *closure.Compiler
	pipeline *commands.Pipeline
	history  ports.RunHistory
)

var rootCmd = &cobra.Command{
	Use:   "ppw",
	Short: "Closure Compiler preprocessor wrapper",
	Long: `ppw drives a modified Closure Compiler over JavaScript sources and
prepends the global variable slots the compiled output expects.

For each input it compiles the file, reads the dependency log the compiler
wrote and injects "var globalVariable_SHYDNUTN_000,...;" at the head of the
compiled artifact.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return fmt.Errorf("no command given")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cleanup releases what setup opened. It runs after every command, including
// one that failed.
func cleanup() {
	if logger != nil {
		_ = logger.Sync()
	}
	if history != nil {
		if err := history.Close(); err != nil {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "failed to close run history: %v\n", err)
		}
		history = nil
	}
}

// requireCompiler fails fast when the compiler runtime is not installed
func requireCompiler() error {
	if !compiler.IsAvailable() {
		return fmt.Errorf("%w: %s not found in PATH", application.ErrCompilerLaunch, cfg.Compiler.Runtime)
	}
	return nil
}

// expandHome rewrites a leading ~ in each path flag
func expandHome(paths ...*string) {
	for _, p := range paths {
		*p = filesystem.ExpandHome(*p)
	}
}

func init() {
	cobra.OnFinalize(cleanup)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultConfigPath, "path to the YAML config file")
	pf.StringVar(&jarPath, "jar", "", "path to the Closure Compiler jar")
	pf.StringVar(&runtimeBin, "runtime", "", "runtime used to launch the jar")
	pf.StringVar(&nodeSource, "node-source", "", "directory of Node builtin module sources")
	pf.BoolVar(&resolveBuiltins, "resolve-builtins", false, "resolve Node builtin modules from --node-source")
	pf.StringVar(&languageOut, "language-out", "", "output language level")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&historyPath, "history", "", "record runs in this SQLite database")
}

// setup loads configuration, applies flag overrides and builds the pipeline
func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("jar") {
		cfg.Compiler.Jar = jarPath
	}
	if flags.Changed("runtime") {
		cfg.Compiler.Runtime = runtimeBin
	}
	if flags.Changed("node-source") {
		cfg.Compiler.BuiltinSource = nodeSource
	}
	if flags.Changed("resolve-builtins") {
		cfg.Compiler.ResolveBuiltins = resolveBuiltins
	}
	if flags.Changed("language-out") {
		cfg.Compiler.LanguageOut = languageOut
	}
	if flags.Changed("verbose") {
		cfg.Logging.Verbose = verbose
	}
	if flags.Changed("history") {
		cfg.History.Path = historyPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	expandHome(&cfg.Compiler.Jar, &cfg.Compiler.BuiltinSource,
		&runFile, &runOutDir, &watchFile, &watchOutDir,
		&batchOutDir, &batchOutDirs, &pathsOutDir, &verifyOutDir, &inspectOutDir)

	logger = logging.New(logging.Options{
		Verbose:    cfg.Logging.Verbose,
		Timestamps: cfg.Logging.Timestamps,
		Output:     cmd.OutOrStdout(),
	})

	compiler = closure.NewCompiler(
		closure.WithRuntime(cfg.Compiler.Runtime),
		closure.WithJar(cfg.Compiler.Jar),
		closure.WithBuiltinSource(cfg.Compiler.BuiltinSource),
		closure.WithResolveBuiltins(cfg.Compiler.ResolveBuiltins),
		closure.WithLanguageOut(cfg.Compiler.LanguageOut),
		closure.WithTimeout(cfg.Compiler.Timeout),
	)
	pipeline = &commands.Pipeline{
		Compiler:  compiler,
		Reader:    filesystem.NewDependencyLogReader(),
		Workspace: filesystem.NewWorkspace(),
		Logger:    logger,
	}

	if cfg.History.Path != "" {
		h, err := sqlite.OpenHistory(cfg.History.Path)
		if err != nil {
			return err
		}
		history = h
		pipeline.History = h
	}

	if cfg.Publish.Enabled() {
		pub, err := s3.NewPublisher(s3.Config{
			Endpoint:  cfg.Publish.Endpoint,
			Region:    cfg.Publish.Region,
			AccessKey: cfg.Publish.AccessKey,
			SecretKey: cfg.Publish.SecretKey,
			Bucket:    cfg.Publish.Bucket,
			UseSSL:    cfg.Publish.UseSSL,
		})
		if err != nil {
			return err
		}
		pipeline.Publisher = pub
	}

	return nil
}
