package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-gone/internal/ast"
	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/parser"
	"github.com/cwbudde/go-gone/internal/semantic"
	"github.com/spf13/cobra"
)

var showTypes bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check a Gone program",
	Long: `Run the semantic checker on a Gone program and report diagnostics.

Examples:
  gone check program.g

  # Print the typed AST after checking
  gone check --show-types program.g`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "check inline code instead of reading from file")
	checkCmd.Flags().BoolVar(&showTypes, "show-types", false, "print the typed AST after checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(args)
	if err != nil {
		return err
	}

	reporter := errors.NewReporter(os.Stderr)
	program := parser.Parse(input, reporter)
	if reporter.Count() > 0 {
		return diagnosticsError(reporter.Count())
	}

	semantic.NewAnalyzer(reporter).Check(program)

	if showTypes {
		ast.Dump(os.Stdout, program, true)
	}

	if reporter.Count() > 0 {
		return diagnosticsError(reporter.Count())
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Println("ok")
	}
	return nil
}
