// Package jast is a minimal syntax tree for Java-like sources, sufficient for
// scope-based symbol resolution.
//
// A tree is a set of [Node] values linked parent to children. Every child holds
// a [Role] telling which part of its parent it is; the allowed roles of every
// [Kind] are fixed by a schema, which also decides child order for hashing and
// structural comparison.
//
// Core components:
//
//   - Builders
//     Constructors like [Method], [Block], [LocalVar] or [For] produce detached
//     subtrees. Roles are inferred from the child kind unless preset with [As].
//
//   - Structural identity
//     [Hash] and [Equal] compare subtrees ignoring comments. [IndexOf] and
//     [LastIndexOf] locate a node in a statement list by identity first and by
//     structure second.
//
//   - YAML form
//     [DecodeYAML] and [LoadYAML] read trees produced by external parsers.
//
//   - Position index
//     [Index] maps source offsets to the innermost node covering them.
//
// Trees are immutable once built and safe for concurrent reads.
package jast
