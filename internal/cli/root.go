package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tessro/gplay/internal/config"
	gerrors "github.com/tessro/gplay/internal/errors"
	"github.com/tessro/gplay/internal/logging"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	jsonOut bool
	verbose bool

	cfg      *config.Config
	cfgErr   error // Validation error tolerated by skipConfigValidate commands
	logger   *log.Logger
	closeLog func() error
}

func newApp() *app {
	return &app{logger: logging.Discard()}
}

// NewRootCommand builds the gplay command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newApp())
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gplay",
		Short: "Build and inspect station requests for the music streaming API",
		Long: `gplay builds station track-list request bodies and decodes mutation
results of the music streaming API, without talking to the service itself.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}
			return a.initLogger()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ~/.gplayrc)")
	rootCmd.PersistentFlags().BoolVarP(&a.jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newStationTracksCmd(a),
		newMutationResultCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// Command annotations that relax config loading.
const (
	// skipConfigLoad marks commands that run before a config file exists.
	skipConfigLoad = "skip-config-load"
	// skipConfigValidate marks commands that must work on a broken config file.
	skipConfigValidate = "skip-config-validate"
)

func (a *app) initConfig(cmd *cobra.Command) error {
	if cmd.Annotations[skipConfigLoad] == "true" {
		a.cfg = config.Default()
		return nil
	}

	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadFrom(a.cfgFile)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", gerrors.ErrConfigNotFound, a.cfgFile)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := a.cfg.Validate(); err != nil {
		if cmd.Annotations[skipConfigValidate] != "true" {
			return fmt.Errorf("%w: %w", gerrors.ErrInvalidConfig, err)
		}
		a.cfgErr = err
		// The logger still needs a usable level.
		if a.cfg.Log.Validate() != nil {
			a.cfg.Log = config.Default().Log
		}
	}

	return nil
}

func (a *app) initLogger() error {
	logger, closeLog, err := logging.New(a.cfg.Log, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.logger = logger
	a.closeLog = closeLog
	if a.cfgErr != nil {
		a.logger.Warn("config file is invalid", "err", a.cfgErr)
	}
	return nil
}

// close releases the log file. It is safe to call more than once.
func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	closeLog := a.closeLog
	a.closeLog = nil
	return closeLog()
}

// Execute runs the root command.
func Execute() {
	a := newApp()
	err := newRootCommand(a).Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, gerrors.Format(err))
		os.Exit(1)
	}
}
