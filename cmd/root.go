package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/intrus/internal/config"
	"github.com/arnavsurve/intrus/internal/logging"
)

// Exit codes returned by ExitCode.
const (
	ExitOK          = 0
	ExitDiagnostics = 1 // grammar errors were reported
	ExitFatal       = 2 // malformed numeral, bad input or usage
)

// exitError carries a process exit code through cobra. Its message has
// already been printed by the command that returned it.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFatal
}

// Report prints err to w unless the failing command already did.
func Report(w io.Writer, err error) {
	var ee *exitError
	if err == nil || errors.As(err, &ee) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the intrus command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "intrus",
		Short: "Intrus front end: tokenizer and parser",
		Long: `Intrus turns source text into tokens and a syntax tree.

Commands:
  init   Scaffold a new Intrus project
  lex    Print the tokens of a source file
  parse  Print the syntax tree and diagnostics of a source file
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newInitCmd(a), newLexCmd(a), newParseCmd(a))
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and builds the logger.
func (a *app) setup(logOut io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.logger, err = logging.New(a.cfg.Log, logOut, a.verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	return nil
}

func (a *app) color() bool {
	return !a.noColor && a.cfg.Output.Color
}
