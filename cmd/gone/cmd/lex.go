package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/lexer"
	"github.com/spf13/cobra"
)

var onlyErrors bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Gone file or expression",
	Long: `Tokenize (lex) a Gone program and print the resulting tokens.

Examples:
  # Tokenize a source file
  gone lex program.g

  # Tokenize inline source
  gone lex -e "var x int = 42;"

  # Show only illegal tokens
  gone lex --only-errors program.g`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "lex inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s (%d bytes)\n---\n", filename, len(input))
	}

	reporter := errors.NewReporter(os.Stderr)
	l := lexer.New(input, reporter)

	tokenCount := 0
	for {
		tok := l.NextToken()
		if tok.Type == lexer.EOF {
			break
		}
		tokenCount++
		if onlyErrors && tok.Type != lexer.ILLEGAL {
			continue
		}
		fmt.Printf("[%-10s] %q @%s\n", tok.Type, tok.Literal, tok.Pos)
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", tokenCount)
	}

	if reporter.Count() > 0 {
		return diagnosticsError(reporter.Count())
	}
	return nil
}
