// ukit is a small command line front end over the utilkit packages: tree
// file inspection and screen capture.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"utilkit/pkg/sysexit"
)

var (
	// Flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ukit",
	Short: "utilkit - tree inspection and screen capture utilities",
	Long: `ukit inspects tree files (YAML or JSON) and captures screenshots.

Tree files describe a rooted ordered tree of string-labeled nodes:

  data: root
  children:
    - data: left
    - data: right

Exit statuses follow sysexits.h (64 usage, 65 bad data, 66 missing input).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
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
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(captureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(sysexit.CodeOf(err, sysexit.Software)))
	}
}
