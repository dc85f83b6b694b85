// Package diagnostic provides structured build-time diagnostics for the
// ordantic generator.
//
// A Diagnostic points at the declaration that could not be processed
// (file, line, column) and carries a stable code plus a human-readable
// message. Diagnostics satisfy error so analyzer stages can return them
// directly; Diagnostics collects them across a whole package load.
package diagnostic
