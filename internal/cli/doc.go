// Package cli parses the command line, validates the options and handles
// process-level concerns like exit codes and the logger.
package cli
