package engine

import "github.com/lixenwraith/fruit-balance/catalog"

// Symbol is a comparison control
type Symbol int

const (
	SymbolNone Symbol = iota
	SymbolLess
	SymbolEqual
	SymbolGreater
)

// Symbols lists the selectable controls in display order
var Symbols = [...]Symbol{SymbolLess, SymbolEqual, SymbolGreater}

// String returns the printable symbol
func (s Symbol) String() string {
	switch s {
	case SymbolLess:
		return "<"
	case SymbolEqual:
		return "="
	case SymbolGreater:
		return ">"
	default:
		return ""
	}
}

// ParseSymbol maps '<', '=', '>' to a Symbol
func ParseSymbol(r rune) (Symbol, bool) {
	switch r {
	case '<':
		return SymbolLess, true
	case '=':
		return SymbolEqual, true
	case '>':
		return SymbolGreater, true
	default:
		return SymbolNone, false
	}
}

// Compare judges symbol against the two pans
// complete is false when either pan is empty; correct is then always false
// Weights compare exactly, ties require identical values
func Compare(left, right *catalog.Item, symbol Symbol) (correct, complete bool) {
	if left == nil || right == nil {
		return false, false
	}
	switch symbol {
	case SymbolLess:
		return left.Weight < right.Weight, true
	case SymbolEqual:
		return left.Weight == right.Weight, true
	case SymbolGreater:
		return left.Weight > right.Weight, true
	default:
		return false, true
	}
}
