// Package diag defines the SYM-series diagnostic codes reported by the tree
// checker and the reporter collecting them.
//
// # Structure
//
// Rule codes follow the format "SYM<NNN>: <Name>" and are grouped by area:
//
//	000–009  Name uses
//	010–019  Tree and API contract
//	020–039  Declarations
//
// Example:
//
//	diag.SYM020ShadowsField.String()      → "SYM020: ShadowsField"
//	diag.SYM020ShadowsField.Description() → "A local declaration hides a field."
//
// Rule identifiers are stable, existing codes are never renumbered.
package diag
