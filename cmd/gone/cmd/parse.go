package cmd

import (
	"os"

	"github.com/cwbudde/go-gone/internal/ast"
	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Gone source code and display the AST",
	Long: `Parse a Gone program and print the resulting Abstract Syntax Tree.

If no file is provided, reads from stdin.

Examples:
  gone parse program.g
  gone parse -e "print 1 + 2 * 3;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(args)
	if err != nil {
		return err
	}

	reporter := errors.NewReporter(os.Stderr)
	program := parser.Parse(input, reporter)

	if reporter.Count() > 0 {
		return diagnosticsError(reporter.Count())
	}

	ast.Dump(os.Stdout, program, false)
	return nil
}
