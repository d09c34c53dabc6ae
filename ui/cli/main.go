// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keycalc/buildvars"
	"github.com/toeirei/keycalc/internal/config"
	"github.com/toeirei/keycalc/internal/i18n"
	"github.com/toeirei/keycalc/internal/logging"
	"github.com/toeirei/keycalc/ui/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app carries the state shared by the commands of one root command.
type app struct {
	cfg     config.Config
	cfgFile string
	verbose bool
	logFile *os.File
	// missingConfig is set when no config file was found on startup.
	missingConfig bool
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "keycalc",
		Short: "Keycalc is a keypad calculator for the terminal.",
		Long: `Keycalc behaves like a pocket calculator: operators are applied
strictly left to right, results longer than twelve characters switch to
exponent notation and dividing by zero yields NaN.

Running without a subcommand launches the interactive keypad. When stdin
is not a terminal, every input line is read as a button sequence
(e.g. "12 + 3 =") and the display is printed after each line.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.run,
	}

	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	// Define flags
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	// cobra prints cmd.Version when this flag is set
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	applyDefaultFlags(cmd)

	cmd.AddCommand(
		newEvalCmd(),
		newVersionCmd(),
	)

	// cobra skips post-run hooks when RunE fails, so each RunE releases
	// the log file itself.
	for _, c := range append([]*cobra.Command{cmd}, cmd.Commands()...) {
		if c.RunE != nil {
			c.RunE = a.withTeardown(c.RunE)
		}
	}

	return cmd
}

// applyDefaultFlags adds the flags that mirror config keys. They are bound
// to viper by config.LoadConfig.
func applyDefaultFlags(cmd *cobra.Command) {
	defaults := config.Defaults()
	flags := cmd.PersistentFlags()
	if flags.Lookup("language") == nil {
		flags.String("language", defaults["language"].(string), `UI language ("en", "de")`)
	}
	if flags.Lookup("clipboard") == nil {
		flags.Bool("clipboard", defaults["clipboard"].(bool), "Enable copying the display to the clipboard")
	}
	if flags.Lookup("alt-screen") == nil {
		flags.Bool("alt-screen", defaults["alt_screen"].(bool), "Run the keypad in the alternate screen")
	}
	if flags.Lookup("log-file") == nil {
		flags.String("log-file", defaults["log_file"].(string), "Write logs to this file")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		// If the flag is set but the value is empty, do nothing.
		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	logging.SetDebug(a.verbose)

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A "file not found" error is expected on first run. The root command
	// persists the defaults later so users have a file to edit.
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		a.missingConfig = true
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if a.cfg.LogFile != "" {
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		a.logFile = f
		logging.SetOutput(f)
	}

	if a.cfg.Language == "" || !i18n.IsSupported(a.cfg.Language) {
		if a.cfg.Language != "" {
			logging.Warnf("unsupported language %q, falling back to %s", a.cfg.Language, config.Defaults()["language"])
		}
		a.cfg.Language = config.Defaults()["language"].(string)
	}
	i18n.Init(a.cfg.Language)

	logging.Debugf("config: %+v", a.cfg)
	return nil
}

// withTeardown wraps run so the log file is closed whether or not it fails.
func (a *app) withTeardown(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		return errors.Join(err, a.teardown())
	}
}

// writeDefaultConfig persists the loaded defaults when no config file
// existed. Only the interactive root command does this.
func (a *app) writeDefaultConfig() {
	if !a.missingConfig {
		return
	}
	a.missingConfig = false
	if err := config.WriteConfigFile(&a.cfg, false); err != nil {
		logging.Warnf("could not write default config file: %v", err)
		return
	}
	logging.Debugf("wrote default config to user config path")
}

func (a *app) teardown() error {
	if a.logFile == nil {
		return nil
	}
	logging.SetOutput(os.Stderr)
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	a.writeDefaultConfig()

	in := cmd.InOrStdin()
	if !isTerminal(in) {
		return runLines(in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	// the keypad owns the terminal, keep stray log lines off it
	if a.logFile == nil {
		logging.SetOutput(io.Discard)
		defer logging.SetOutput(os.Stderr)
	}

	return tui.Run(tui.Options{
		Version:   buildvars.VersionOrDefault(resolvedVersion()),
		AltScreen: a.cfg.AltScreen,
		Clipboard: a.cfg.Clipboard,
	})
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
