package cmd

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/intrus/internal/compiler"
	"github.com/arnavsurve/intrus/internal/compiler/token"
	"github.com/arnavsurve/intrus/internal/config"
)

//go:embed templates/*
var tplFS embed.FS

// init: scaffold a new project
func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new Intrus project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDir := "."
			if len(args) == 1 {
				targetDir = args[0]
				if _, err := os.Stat(targetDir); err == nil {
					return fmt.Errorf("directory %q already exists", targetDir)
				}
			}

			absDir, err := filepath.Abs(targetDir)
			if err != nil {
				return err
			}
			name := identName(filepath.Base(absDir))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "↪ scaffolding project %q ...\n", name)

			if err := os.MkdirAll(filepath.Join(targetDir, "src"), 0o755); err != nil {
				return err
			}
			if err := config.WriteDefault(filepath.Join(targetDir, config.DefaultFile)); err != nil {
				return err
			}

			srcPath := filepath.Join(targetDir, "src", "main"+compiler.SourceExt)
			if err := writeTpl("templates/main.intr.tpl", srcPath, map[string]string{"Name": name}); err != nil {
				return err
			}

			a.logger.Debug("project initialized", "dir", absDir)
			fmt.Fprintf(out, "✓ project %q initialized!\n", name)
			return nil
		},
	}
}

// writeTpl loads tplName from tplFS, executes it with data, and writes to outPath
func writeTpl(tplName, outPath string, data any) error {
	t, err := template.ParseFS(tplFS, tplName)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.Execute(f, data)
}

// identName turns a directory name into a valid Intrus identifier.
func identName(dir string) string {
	runes := []rune(dir)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			runes[i] = '_'
		}
	}
	name := string(runes)
	if len(runes) == 0 || unicode.IsDigit(runes[0]) || token.LookupWord(name).Kind != token.IDENT {
		name = "p_" + name
	}
	return name
}
