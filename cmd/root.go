package cmd

import (
	"fmt"

	"github.com/benn-herrera/gladfortran/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	verbose    bool
	quiet      bool
	configPath string

	// cfg is the configuration resolved before any subcommand runs.
	cfg *config.Config
)

var log = commonlog.GetLogger("gladfortran.cmd")

var rootCmd = &cobra.Command{
	Use:   "glad-fortran",
	Short: "Fortran ISO_C_BINDING loader generator for Khronos APIs",
	Long: "glad-fortran turns a resolved Khronos feature set (commands, enums, types) into a Fortran 2008 module " +
		"of bind(c) interfaces, procedure pointers, wrappers and a loader subroutine.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to "+config.FileName+" (default: search upward from the working directory)")
}

func setup(cmd *cobra.Command, args []string) error {
	commonlog.Configure(logVerbosity(), nil)

	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.Path != "" {
		log.Infof("using configuration %s", cfg.Path)
	}
	return nil
}

// logVerbosity maps --quiet/--verbose onto commonlog levels: errors only,
// notices, or everything down to debug.
func logVerbosity() int {
	switch {
	case quiet:
		return -2
	case verbose:
		return 2
	default:
		return 0
	}
}

func Execute() error {
	return rootCmd.Execute()
}
