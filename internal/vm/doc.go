// Package vm evaluates a type-checked quill file by walking its AST.
//
// Every Value carries the exact static type the checker resolved for the
// expression that produced it; let bindings and list elements are converted
// to their target type on the way in. Runtime faults are *VMError.
package vm
