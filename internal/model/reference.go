package model

// SymbolReference is the outcome of a lookup: either a declaration, or nothing.
type SymbolReference[D any] struct {
	decl   D
	solved bool
}

// Solved wraps a found declaration.
func Solved[D any](decl D) SymbolReference[D] {
	return SymbolReference[D]{decl: decl, solved: true}
}

// Unsolved is the "name not found here" answer.
func Unsolved[D any]() SymbolReference[D] {
	return SymbolReference[D]{}
}

func (r SymbolReference[D]) IsSolved() bool {
	return r.solved
}

// Declaration returns the found declaration, the zero value for unsolved references.
func (r SymbolReference[D]) Declaration() D {
	return r.decl
}
