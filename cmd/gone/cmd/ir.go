package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/ir"
	"github.com/cwbudde/go-gone/internal/parser"
	"github.com/cwbudde/go-gone/internal/semantic"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Emit the basic-block IR for a Gone program",
	Long: `Compile a Gone program through the full front end and print the
basic-block IR listing. No IR is emitted when any phase reported a
diagnostic.

Examples:
  gone ir program.g
  gone ir -e "var n int = 5; while n > 0 { n = n - 1; }"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)

	irCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "compile inline code instead of reading from file")
}

func runIR(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(args)
	if err != nil {
		return err
	}

	reporter := errors.NewReporter(os.Stderr)
	program := parser.Parse(input, reporter)
	if reporter.Count() == 0 {
		semantic.NewAnalyzer(reporter).Check(program)
	}
	if reporter.Count() > 0 {
		return diagnosticsError(reporter.Count())
	}

	if noColor {
		color.NoColor = true
	}
	blockLabel := color.New(color.FgCyan)
	for _, inst := range ir.Generate(program) {
		if inst.Op == ir.OpBlock {
			blockLabel.Println(inst.String())
			continue
		}
		fmt.Println(inst.String())
	}
	return nil
}
