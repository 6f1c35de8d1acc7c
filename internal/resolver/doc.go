// Package resolver is the entry point of name resolution: given a name use in a
// tree it finds the declaration the name refers to.
package resolver
