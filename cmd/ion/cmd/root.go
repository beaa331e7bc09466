package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amw-zero/ion/core/config"
	"github.com/amw-zero/ion/core/log"
	"github.com/amw-zero/ion/shell"
	"github.com/amw-zero/ion/shell/repl"
)

var (
	cfgFile    string
	verbose    bool
	commandStr string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "ion [script]",
	Short: "ion - a small shell",
	Long: `ion is a small interactive shell and script interpreter.

Without arguments it starts an interactive session. Given a script
file it runs the script, and with -c it runs a single command string.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the command line interface and returns the process exit
// status.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ion: %v\n", err)
		return 1
	}
	return exitStatus
}

// exitStatus carries the shell status out of runRoot, since cobra only
// propagates errors.
var exitStatus int

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default: auto-discovered)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&commandStr, "command", "c", "", "run a single command string and exit")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noColor {
		cfg.NoColor = true
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		logger.WithField("path", cfg.Source).Debug("loaded configuration")
	}

	engine := shell.New(shell.Options{
		Logger:       logger,
		HistoryLimit: cfg.History.Limit,
	})
	defer engine.Close()

	ctx := context.Background()

	switch {
	case commandStr != "":
		err = engine.RunScript(ctx, strings.NewReader(commandStr))
	case len(args) == 1:
		err = engine.RunScriptFile(ctx, args[0])
	default:
		exitStatus = repl.New(repl.Options{
			Engine: engine,
			Config: cfg,
			Logger: logger,
		}).Run(ctx)
		return nil
	}

	if err != nil {
		return err
	}
	if exited, status := engine.ExitRequested(); exited {
		exitStatus = status
	} else {
		exitStatus = engine.State().PreviousStatus()
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.Discover()
}

func buildLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Name:   "ion",
	}), nil
}
