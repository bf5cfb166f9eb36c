package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/intrus/internal/compiler"
	"github.com/arnavsurve/intrus/internal/compiler/token"
)

// lex: echo the token stream
func newLexCmd(a *app) *cobra.Command {
	var showPos bool

	lexCmd := &cobra.Command{
		Use:   "lex [file|-]",
		Short: "Print the tokens of a source file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			toks, lexErr := compiler.Lex(src)
			out := cmd.OutOrStdout()
			color := a.color()
			for _, tok := range toks {
				line := paint(color, TypeStyle, fmt.Sprintf("%-10s", tok.GetType())) + " " +
					paint(color, LiteralStyle, tok.Literal())
				if tok.Kind == token.ILLEGAL && tok.Text != "" {
					line += " " + paint(color, DimStyle, fmt.Sprintf("%q", tok.Text))
				}
				if showPos {
					line = paint(color, DimStyle, fmt.Sprintf("%-7s", tok.Pos)) + " " + line
				}
				fmt.Fprintln(out, line)
			}
			a.logger.Debug("lexed source", "source", name, "tokens", len(toks))

			if lexErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", paint(color, FatalStyle, "fatal"), name, lexErr)
				return &exitError{code: ExitFatal, err: lexErr}
			}
			return nil
		},
	}

	lexCmd.Flags().BoolVar(&showPos, "pos", false, "prefix each token with line:column")
	return lexCmd
}
