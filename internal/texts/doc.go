// Package texts loads the table of user-facing text assets.
//
// A text asset file is a flat mapping from symbolic keys to strings. Any key
// is accepted; the keys the program uses are listed by Keys, and those missing
// from a file fall back to the English table embedded in the binary.
package texts
