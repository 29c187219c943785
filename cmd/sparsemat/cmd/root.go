// Package cmd provides the CLI commands for sparsemat.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sparsemat/internal/config"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Global flags and the state built from them in PersistentPreRunE.
var (
	cfgFile   string
	verbose   bool
	baseDir   string
	outputDir string

	cfg    *config.Config
	logger *zap.Logger
)

// NewRootCmd builds a fresh command tree. Cobra commands keep flag state
// between runs, so tests build one per case.
func NewRootCmd() *cobra.Command {
	cfgFile, verbose, baseDir, outputDir = "", false, "", ""
	cfg, logger = nil, nil

	root := &cobra.Command{
		Use:   "sparsemat",
		Short: "Sparse integer matrix arithmetic on triplet files",
		Long: `sparsemat loads sparse integer matrices from text files and adds,
subtracts, multiplies or transposes them, saving the result next to the inputs.

Files start with two header lines (rows=N, cols=M, each the largest valid
index) followed by one "(row, col, value)" line per non-zero element.

When the operands of mul do not line up, the second one is transposed
automatically if that makes the product defined.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("sparsemat {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultConfigPath+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&baseDir, "base-dir", "", "directory relative input names resolve against")
	pf.StringVar(&outputDir, "output-dir", "", "directory result files are written to")

	root.AddCommand(
		newAddCmd(),
		newSubCmd(),
		newMulCmd(),
		newTransposeCmd(),
		newInfoCmd(),
		newShowCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return root
}

// skipConfigAnnotation marks commands that run on defaults without reading
// a config file.
const skipConfigAnnotation = "sparsemat/skip-config"

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	switch {
	case cmd.Annotations[skipConfigAnnotation] == "true":
		cfg = config.NewConfig()
	case cfgFile != "":
		cfg, err = config.Load(cfgFile)
	default:
		cfg, err = config.LoadOrDefault("")
	}
	if err != nil {
		return err
	}

	if baseDir != "" {
		cfg.Input.BaseDir = baseDir
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	level, err := cfg.Log.Level.ZapLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
