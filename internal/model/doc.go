// Package model defines what resolution produces and what it consumes: value
// declarations, symbol references and the type solver contract.
package model
