package selection

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"food-shopping-list/internal/common"
)

//go:generate go tool stringer -type=Code -linecomment -output=code_string.go

// Code tells why a selection was rejected.
type Code int

const (
	CodeMalformedInput Code = iota + 1 // malformed input
	CodeOutOfRange                     // out of range
)

// Error is a rejected selection. The user is expected to type it again.
type Error struct {
	Code Code
	// Input is the rejected line.
	Input string
	// Numbers lists the out-of-range numbers in the order they were typed.
	Numbers []string
	// Max is the number of meals that could be chosen.
	Max int
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeMalformedInput:
		return fmt.Sprintf("'%s' is not a list of meal numbers separated by spaces", e.Input)
	case CodeOutOfRange:
		noun := "number"
		if len(e.Numbers) > 1 {
			noun = "numbers"
		}

		if e.Max == 0 {
			return fmt.Sprintf("there is no meal with the %s %s: no meal is available", noun, strings.Join(e.Numbers, ", "))
		}

		return fmt.Sprintf("there is no meal with the %s %s, choose between 1 and %d",
			noun, strings.Join(e.Numbers, ", "), e.Max)
	default:
		return e.Code.String()
	}
}

// selectionRegex matches blanks only, or decimal numbers without leading
// zeros separated by at least one blank.
var selectionRegex = regexp.MustCompile(`^[ \t]*(?:(?:0|[1-9][0-9]*)(?:[ \t]+(?:0|[1-9][0-9]*))*)?[ \t]*$`)

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// Parse returns the names picked by input, a list of 1-based positions in
// names. The result follows the order of names and has no duplicates; it is
// empty, not nil, when input is blank. A rejected input is reported as an
// *Error.
func Parse(input string, names []string) ([]string, error) {
	if !selectionRegex.MatchString(input) {
		return nil, &Error{Code: CodeMalformedInput, Input: input, Max: len(names)}
	}

	picked := map[int]struct{}{}

	var outOfRange []string

	for _, token := range strings.FieldsFunc(input, isBlank) {
		n, err := strconv.Atoi(token)
		if err != nil || !common.IsInRange(1, n, len(names)) {
			// Atoi only fails here on numbers too large for an int.
			if !slices.Contains(outOfRange, token) {
				outOfRange = append(outOfRange, token)
			}

			continue
		}

		picked[n] = struct{}{}
	}

	if len(outOfRange) > 0 {
		return nil, &Error{Code: CodeOutOfRange, Input: input, Numbers: outOfRange, Max: len(names)}
	}

	selected := make([]string, 0, len(picked))
	for _, n := range slices.Sorted(maps.Keys(picked)) {
		selected = append(selected, names[n-1])
	}

	return selected, nil
}
