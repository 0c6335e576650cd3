// Package diag defines the diagnostic model shared by the lexer, parser and
// type checker.
//
// A Diagnostic carries a Severity, a stable numeric Code (rendered as
// LEXnnnn / SYNnnnn / SEMnnnn / IOnnnn), a short message and the primary
// source span. Phases emit through a Reporter; BagReporter collects into a Bag
// that the driver and formatters consume.
//
// Every phase stops at its first error. The offending diagnostic is also
// returned to the caller wrapped in *Error, so embedders can work with plain
// Go errors while the CLI keeps rendering the Bag.
//
// Rendering lives in internal/diagfmt; this package performs no IO.
package diag
