// Package match finds the names a misspelled document key was probably meant
// to be, so that diagnostics can say "did you mean 'quantity'?".
//
// Key functions:
//   - NormalizeKey: folds case and separators before comparing
//   - Levenshtein: computes the edit distance between strings
//   - RankCandidates / Suggest: rank known names against a misspelled one
package match
