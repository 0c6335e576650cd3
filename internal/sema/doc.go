// Package sema type-checks a parsed quill file in one left-to-right pass.
//
// The AST is never mutated: resolved types land in Result.ExprTypes keyed by
// expression id, and the type stored for every let binding in
// Result.LetTypes. The first error is fatal.
package sema
