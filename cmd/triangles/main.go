package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"triangles/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "1.1.0"

var (
	// Global flags
	verbose    bool
	configPath string
	noClobber  bool
	precision  int

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Running it with two positional
// arguments is equivalent to the accumulate subcommand.
var rootCmd = &cobra.Command{
	Use:   "triangles <input> <output>",
	Short: "Accumulate incremental actuarial triangle data",
	Long: `triangles reads a text file of incremental claims triangle data,
accumulates the values across development years and writes the cumulative
triangle to an output file.

The input is comma-separated with a header row naming the columns
Product, Origin Year, Development Year and Incremental Value.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("no-clobber") {
			cfg.NoClobber = noClobber
		}
		if cmd.Flags().Changed("precision") {
			cfg.Precision = precision
		}

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return cmd.Help()
		}
		return runAccumulate(cmd, args)
	},
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the triangles version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("triangles %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to yaml config file")
	rootCmd.PersistentFlags().BoolVar(&noClobber, "no-clobber", false, "refuse to overwrite an existing output file")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "decimal places in output (-1 = minimal representation)")

	rootCmd.AddCommand(accumulateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
