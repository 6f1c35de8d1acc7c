// Package typesolver provides type solvers for types living outside the tree:
// in-memory descriptors, possibly read from YAML, and a combinator trying
// several solvers in turn.
package typesolver
