// Package diagnostic provides structured errors and warnings for documents
// loaded by the program.
//
// Key capabilities:
//   - A code per kind of schema violation (CodeMissingUnit, ...)
//   - FormatError, the fatal "Error in <file>: ..." error of a load
//   - Diagnostics, an accumulated list used to report every problem at once
//   - "Did you mean" suggestions attached to a diagnostic
package diagnostic
