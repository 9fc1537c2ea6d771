package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/ir"
	"github.com/cwbudde/go-gone/internal/parser"
	"github.com/cwbudde/go-gone/internal/semantic"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// compileSource runs the full front end the way the ir subcommand
// does, returning the diagnostic stream and the IR listing as text.
func compileSource(input string) (string, string) {
	var diagnostics strings.Builder
	reporter := errors.NewReporter(&diagnostics)

	program := parser.Parse(input, reporter)
	if reporter.Count() == 0 {
		semantic.NewAnalyzer(reporter).Check(program)
	}

	var out strings.Builder
	if reporter.Count() == 0 {
		ir.WriteListing(&out, ir.Generate(program))
	}
	return diagnostics.String(), out.String()
}

func TestPipelineSnapshots(t *testing.T) {
	fixtures := []struct {
		name   string
		source string
	}{
		{
			name: "countdown",
			source: `var n int = 5;
while n > 0 {
    print n;
    n = n - 1;
}
`,
		},
		{
			name: "branching",
			source: `var x int = 3;
const limit = 10;
if x * 2 < limit {
    print x;
} else {
    print limit;
}
`,
		},
		{
			name: "char_and_bool",
			source: `var c char = 'a';
var ok bool = c != 'z';
if ok && true {
    print '\n';
}
`,
		},
		{
			name: "diagnostics",
			source: `a = 3;
var a int;
var b float = 1;
const c = 'a' + 'b';
`,
		},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			diagnostics, listing := compileSource(fixture.source)
			snaps.MatchSnapshot(t, fixture.name+"_diagnostics", diagnostics)
			snaps.MatchSnapshot(t, fixture.name+"_ir", listing)
		})
	}
}

func TestPipelineStopsAfterParseError(t *testing.T) {
	diagnostics, listing := compileSource("var = 5;\nprint undefined_name;\n")

	assert.Equal(t, "1: Syntax error in input at token '='\n", diagnostics)
	assert.Empty(t, listing, "no IR when the parse failed")
}

func TestNoIRWhenCheckFails(t *testing.T) {
	diagnostics, listing := compileSource("print missing;")

	assert.Equal(t, "1: missing undefined\n", diagnostics)
	assert.Empty(t, listing)
}

func TestReadSourceEval(t *testing.T) {
	evalExpr = "print 1;"
	defer func() { evalExpr = "" }()

	input, name, err := readSource(nil)
	assert.NoError(t, err)
	assert.Equal(t, "print 1;", input)
	assert.Equal(t, "<eval>", name)
}
