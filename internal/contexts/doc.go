// Package contexts answers "what does this name mean here" for every scope
// bearing node of a [jast] tree.
//
// A [Context] wraps one node. It knows the bindings the node introduces and
// delegates everything else outward, to the context of the nearest enclosing
// scope. Within statement lists (blocks and switch entries) a statement looks at
// the declarations of its preceding siblings first, nearest first, and only then
// leaves the list. So inner declarations shadow outer ones and no statement sees
// declarations that come after it.
//
// Bindings come in two flavours:
//
//   - Uniform ones are visible to every part of the node: parameters of methods,
//     constructors and lambdas, fields of classes, pattern variables of switch
//     entries. [Context.SolveSymbol] checks them.
//   - Child specific ones are visible only to some children: for-init
//     variables, the foreach variable, try resources, the catch parameter,
//     preceding local declarations of a block. Only
//     [Context.LocalVariablesExposedToChild] reports them.
//
// Contexts are built on demand by a [Factory] and never cached. They do not
// modify the tree, so queries may run concurrently.
package contexts
