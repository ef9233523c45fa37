package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/odilia-app/odilia-common/internal/config"
	"github.com/odilia-app/odilia-common/internal/input/keymap"
	"github.com/odilia-app/odilia-common/internal/log"
)

// globals is the state shared by every subcommand.
type globals struct {
	lookup   config.LookupFunc
	logLevel string
	noColor  bool

	opts   config.Options
	logger *log.Logger
}

func newRootCmd(lookup config.LookupFunc) *cobra.Command {
	g := &globals{lookup: lookup}

	root := &cobra.Command{
		Use:   "odilia-keys",
		Short: "Inspect screen reader key bindings",
		Long: `odilia-keys parses key binding specifications such as
"Control+Shift+Alt+Meta+Applications+Odilia+s:3" and validates keymap
files written in TOML, YAML or JSON.

Environment:
  ODILIA_KEYMAP            keymap file used when FILE is omitted
  ODILIA_LOG_LEVEL         default for --log-level
  ODILIA_KEYMAP_DEFAULTS   merge the built-in keymap (true/false)
  ODILIA_KEYMAP_STRICT     reject unknown fields (true/false)
  ODILIA_KEYMAP_DEBOUNCE   watch debounce, e.g. 250ms`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: g.setup,
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newParseCmd(g))
	root.AddCommand(newCheckCmd(g))
	root.AddCommand(newWatchCmd(g))
	root.AddCommand(newPressCmd(g))
	root.AddCommand(newRunCmd(g))
	root.AddCommand(newVersionCmd())
	return root
}

// setup reads the environment, then applies flags over it.
func (g *globals) setup(cmd *cobra.Command, _ []string) error {
	opts, err := config.OptionsFromEnv(config.DefaultOptions(), g.lookup)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		opts.LogLevel = g.logLevel
	}

	level, err := log.ParseLogLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	if g.noColor {
		color.NoColor = true
	}

	g.logger = log.NewLogger(log.LoggerConfig{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		Prefix: "odilia-keys",
	})
	opts.Logger = g.logger
	g.opts = opts
	return nil
}

// keymapPath returns the file argument, or the keymap named by the
// environment.
func (g *globals) keymapPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return config.PathFromEnv(g.lookup)
}

// loadKeymap loads file, or returns the built-in keymap when file is empty.
func (g *globals) loadKeymap(file string) (*keymap.Keymap, error) {
	if file == "" {
		return keymap.Default(), nil
	}
	km, _, err := config.NewLoader(g.opts).Load(file)
	return km, err
}
