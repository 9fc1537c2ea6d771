package errors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterCollectsInOrder(t *testing.T) {
	r := NewReporter(nil)
	assert.Zero(t, r.Count())

	r.Report(3, "%s undefined", "a")
	r.Report(1, "illegal character '%s'", "@")

	require.Equal(t, 2, r.Count())
	diags := r.Diagnostics()
	assert.Equal(t, Diagnostic{Line: 3, Message: "a undefined"}, diags[0])
	assert.Equal(t, Diagnostic{Line: 1, Message: "illegal character '@'"}, diags[1])
}

func TestReporterWritesToStream(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Report(2, "type error. %s = %s", "int", "float")

	assert.Equal(t, "2: type error. int = float\n", buf.String())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Line: 7, Message: "n redefined. Previous definition on 1"}
	assert.Equal(t, "7: n redefined. Previous definition on 1", d.String())
}
