package semantic

import (
	"strconv"

	"github.com/cwbudde/go-gone/internal/types"
)

// SymbolKind classifies what a name refers to.
type SymbolKind int

const (
	SymbolConst SymbolKind = iota // const declaration
	SymbolVar                     // var declaration
	SymbolType                    // built-in type name
)

// Symbol represents an entry in the symbol table: a constant, a
// variable, or one of the seeded built-in type names.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Type     *types.Type
	DeclLine int // 0 for seeded built-ins
}

// DeclLineString renders the declaration line for error messages.
func (s *Symbol) DeclLineString() string {
	if s.DeclLine == 0 {
		return "<builtin>"
	}
	return strconv.Itoa(s.DeclLine)
}

// SymbolTable manages the single flat scope of a Gone program. Unlike
// richer languages there is no nesting: blocks do not open scopes and
// redefinition anywhere in the program is an error.
type SymbolTable struct {
	symbols map[string]*Symbol
}

// NewSymbolTable creates a symbol table seeded with the built-in type
// names, so datatype lookups go through the same mechanism as
// variables and constants.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{symbols: make(map[string]*Symbol)}
	for _, name := range types.Builtins() {
		typ, _ := types.Lookup(name)
		st.symbols[name] = &Symbol{Name: name, Kind: SymbolType, Type: typ}
	}
	return st
}

// Define adds a symbol to the table. The caller is responsible for
// checking for redefinition first.
func (st *SymbolTable) Define(sym *Symbol) {
	st.symbols[sym.Name] = sym
}

// Resolve looks up a name in the table.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}
