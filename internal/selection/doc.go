// Package selection reads the meals a user picks from a numbered list.
//
// A selection is typed as 1-based meal numbers separated by blanks (spaces or
// tabs), for instance "3 1". Numbers have no sign and no leading zero, so
// "12" is the twelfth meal, never the first and the second. A blank line
// selects nothing.
package selection
