// Package types implements the Gone type system.
//
// The four built-in types are registered at package init. Each type
// carries immutable tables describing which binary and unary operators
// it supports and what type each operation yields. A dedicated error
// sentinel keeps type propagation going after a detected error so a
// single mistake does not produce a cascade of diagnostics.
package types

// binOpKey identifies a binary operation on a type: the (normalized)
// operator symbol together with the right-hand operand's type name.
type binOpKey struct {
	op  string
	rhs string
}

// Type is an immutable descriptor for a Gone type. Operator tables are
// fixed after registration.
type Type struct {
	Name      string
	binaryOps map[binOpKey]string
	unaryOps  map[string]string
}

// Built-in types. ERROR is the propagation sentinel: it supports no
// operators and silently absorbs any operation applied to it.
var (
	INT   = &Type{Name: "int"}
	FLOAT = &Type{Name: "float"}
	CHAR  = &Type{Name: "char"}
	BOOL  = &Type{Name: "bool"}
	ERROR = &Type{Name: "error"}
)

// registry maps type names to the registered built-in types.
// The error sentinel is deliberately absent: it is not a nameable type.
var registry = map[string]*Type{}

func register(t *Type) {
	registry[t.Name] = t
}

func init() {
	comparisons := []string{"==", "!=", "<", "<=", ">", ">="}
	arithmetic := []string{"+", "-", "*", "/"}

	INT.binaryOps = map[binOpKey]string{}
	for _, op := range comparisons {
		INT.binaryOps[binOpKey{op, "int"}] = "bool"
	}
	for _, op := range arithmetic {
		INT.binaryOps[binOpKey{op, "int"}] = "int"
	}
	INT.unaryOps = map[string]string{"+": "int", "-": "int"}

	FLOAT.binaryOps = map[binOpKey]string{}
	for _, op := range comparisons {
		FLOAT.binaryOps[binOpKey{op, "float"}] = "bool"
	}
	for _, op := range arithmetic {
		FLOAT.binaryOps[binOpKey{op, "float"}] = "float"
	}
	FLOAT.unaryOps = map[string]string{"+": "float", "-": "float"}

	// char supports comparisons but no binary arithmetic. The unary
	// + and - entries are typed identities kept for checker-level
	// compatibility with the comparison set.
	CHAR.binaryOps = map[binOpKey]string{}
	for _, op := range comparisons {
		CHAR.binaryOps[binOpKey{op, "char"}] = "bool"
	}
	CHAR.unaryOps = map[string]string{"+": "char", "-": "char"}

	BOOL.binaryOps = map[binOpKey]string{
		{"and", "bool"}: "bool",
		{"or", "bool"}:  "bool",
		{"==", "bool"}:  "bool",
		{"!=", "bool"}:  "bool",
	}
	BOOL.unaryOps = map[string]string{"not": "bool"}

	register(INT)
	register(FLOAT)
	register(CHAR)
	register(BOOL)
}

// Lookup resolves a type name against the registry.
func Lookup(name string) (*Type, bool) {
	t, ok := registry[name]
	return t, ok
}

// Builtins returns the names of the registered built-in types.
func Builtins() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// String returns the type's name. Safe on a nil receiver so that
// unchecked nodes can be printed.
func (t *Type) String() string {
	if t == nil {
		return "<unresolved>"
	}
	return t.Name
}

// Equals reports whether two types are the same type.
func (t *Type) Equals(other *Type) bool {
	return t != nil && other != nil && t.Name == other.Name
}

// IsError reports whether the type is the error sentinel.
func (t *Type) IsError() bool {
	return t == ERROR
}

// BinaryOp looks up the result type of applying op between t and rhs.
// The operator must use its normalized name ("and", not "&&"). Returns
// false when the operation is unsupported, including when the operand
// types differ: Gone performs no implicit conversions.
func (t *Type) BinaryOp(op string, rhs *Type) (*Type, bool) {
	if t.IsError() || rhs.IsError() {
		return ERROR, true
	}
	result, ok := t.binaryOps[binOpKey{op: op, rhs: rhs.Name}]
	if !ok {
		return nil, false
	}
	return registry[result], true
}

// UnaryOp looks up the result type of applying the normalized unary
// operator op to t.
func (t *Type) UnaryOp(op string) (*Type, bool) {
	if t.IsError() {
		return ERROR, true
	}
	result, ok := t.unaryOps[op]
	if !ok {
		return nil, false
	}
	return registry[result], true
}
