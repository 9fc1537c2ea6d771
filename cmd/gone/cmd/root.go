// Package cmd implements the gone command-line interface.
//
// Each compiler phase is exposed as a subcommand (lex, parse, check,
// ir) so the pipeline can be inspected stage by stage. Every
// subcommand exits non-zero when the phase produced diagnostics.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	evalExpr string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "gone",
	Short: "Compiler front end for the Gone language",
	Long: `gone is the front end of a compiler for Gone, a small statically
typed imperative language.

The pipeline runs lexer, parser, semantic checker and IR generator in
sequence. Each phase is available as its own subcommand:

  gone lex file.g      tokenize and print the token stream
  gone parse file.g    parse and print the AST
  gone check file.g    type-check and report diagnostics
  gone ir file.g       emit the basic-block IR listing`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// readSource resolves the subcommand's input: the --eval flag, a file
// argument, or stdin. Returns the source text and a display name.
func readSource(args []string) (string, string, error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// diagnosticsError renders the failure summary for a phase that
// reported count diagnostics.
func diagnosticsError(count int) error {
	if noColor {
		color.NoColor = true
	}
	return fmt.Errorf("%s", color.RedString("%d error(s)", count))
}
