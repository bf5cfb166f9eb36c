package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/intrus/internal/compiler"
)

// parse: print the syntax tree and diagnostics
func newParseCmd(a *app) *cobra.Command {
	var (
		format     string
		strict     bool
		unifiedEOF bool
	)

	parseCmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the syntax tree and diagnostics of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			f, err := compiler.ParseFormat(format)
			if err != nil {
				return err
			}

			parserCfg := a.cfg.Parser
			if strict {
				parserCfg.StrictStatements = true
			}
			if unifiedEOF {
				parserCfg.UnifiedEOF = true
			}

			src, name, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			res, parseErr := compiler.Parse(src, compiler.Options(parserCfg, a.logger)...)
			if err := compiler.Dump(cmd.OutOrStdout(), res.Program, f); err != nil {
				return err
			}

			color := a.color()
			errOut := cmd.ErrOrStderr()
			for _, msg := range res.Errors {
				fmt.Fprintf(errOut, "%s:%s\n", name, paint(color, ErrorStyle, msg))
			}
			a.logger.Debug("parsed source",
				"source", name,
				"statements", len(res.Program.Statements),
				"errors", len(res.Errors))

			if parseErr != nil {
				fmt.Fprintf(errOut, "%s %s: %v\n", paint(color, FatalStyle, "fatal"), name, parseErr)
				return &exitError{code: ExitFatal, err: parseErr}
			}
			if !res.OK() {
				return &exitError{code: ExitDiagnostics, err: fmt.Errorf("%s: %d diagnostic(s)", name, len(res.Errors))}
			}
			return nil
		},
	}

	parseCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, yaml, json, spew")
	parseCmd.Flags().BoolVar(&strict, "strict", false, "report tokens that cannot start a statement")
	parseCmd.Flags().BoolVar(&unifiedEOF, "unified-eof", false, "require ';' before end of input after return")
	return parseCmd
}
