package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"food-shopping-list/internal/diagnostic"
	"food-shopping-list/internal/document"
	"food-shopping-list/internal/match"
)

// report records an error located at the given node.
func (c *checker) report(code diagnostic.Code, at *document.Node, path, format string, args ...any) {
	c.add(newDiagnostic(code, at, path, fmt.Sprintf(format, args...)))
}

func (c *checker) add(d diagnostic.Diagnostic) {
	c.res.Add(d)
}

func newDiagnostic(code diagnostic.Code, at *document.Node, path, message string) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     code,
		Message:  message,
		Path:     path,
	}

	if at != nil && at.Pos.IsValid() {
		d.Line, d.Column = at.Pos.Line, at.Pos.Column
	}

	return d
}

// checkAmountKeys checks that amount has exactly the keys quantity and unit.
// A missing key is reported before an unexpected one.
func (c *checker) checkAmountKeys(amount *document.Node, meal, ingredient, path string) bool {
	extra := unexpectedKeys(amount)

	for _, missing := range []struct {
		key  string
		code diagnostic.Code
	}{
		{KeyQuantity, diagnostic.CodeMissingQuantity},
		{KeyUnit, diagnostic.CodeMissingUnit},
	} {
		if _, ok := amount.Lookup(missing.key); ok {
			continue
		}

		msg := fmt.Sprintf("ingredient '%s' in meal '%s' misses the key '%s'", ingredient, meal, missing.key)
		if typo := misspellingOf(missing.key, extra); typo != "" {
			msg += fmt.Sprintf(" (found '%s' instead)", typo)
		}

		d := newDiagnostic(missing.code, amount, path, msg)
		d.Suggestions = suggestionsFor(extra)
		c.add(d)

		return false
	}

	if len(amount.Entries) == len(amountKeys) {
		return true
	}

	quoted := make([]string, len(extra))
	for i, k := range extra {
		quoted[i] = "'" + k + "'"
	}

	d := newDiagnostic(diagnostic.CodeUnexpectedKey, amount, path, fmt.Sprintf(
		"ingredient '%s' in meal '%s' has one or several keys that are not '%s' or '%s': %s",
		ingredient, meal, KeyQuantity, KeyUnit, strings.Join(quoted, ", ")))
	d.Suggestions = suggestionsFor(extra)
	c.add(d)

	return false
}

// unexpectedKeys returns the text of the keys of amount other than quantity
// and unit, sorted.
func unexpectedKeys(amount *document.Node) []string {
	var extra []string

	for _, e := range amount.SortedEntries() {
		if k, ok := e.Key.AsString(); ok && slices.Contains(amountKeys, k) {
			continue
		}

		extra = append(extra, e.Key.Text())
	}

	return extra
}

// misspellingOf returns the first of keys that looks like a misspelled key.
func misspellingOf(key string, keys []string) string {
	for _, k := range keys {
		if slices.Contains(match.Suggest(k, []string{key}), key) {
			return k
		}
	}

	return ""
}

func suggestionsFor(keys []string) []string {
	var out []string

	for _, k := range keys {
		for _, s := range match.Suggest(k, amountKeys) {
			if !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
	}

	return out
}

// unitUsage maps an ingredient to the units it is measured in, and each unit
// to the meals using it.
type unitUsage map[string]map[string][]string

func (u unitUsage) record(ingredient, unit, meal string) {
	if u[ingredient] == nil {
		u[ingredient] = map[string][]string{}
	}

	u[ingredient][unit] = append(u[ingredient][unit], meal)
}

// checkUnits reports every ingredient measured in more than one unit across
// the catalog.
func (c *checker) checkUnits() {
	for _, ingredient := range slices.Sorted(maps.Keys(c.units)) {
		units := c.units[ingredient]
		if len(units) < 2 {
			continue
		}

		parts := make([]string, 0, len(units))
		for _, unit := range slices.Sorted(maps.Keys(units)) {
			meals := slices.Sorted(slices.Values(units[unit]))
			parts = append(parts, fmt.Sprintf("'%s' in [%s]", unit, strings.Join(meals, ", ")))
		}

		c.report(diagnostic.CodeInconsistentUnit, nil, ingredient,
			"ingredient '%s' uses several units: %s", ingredient, strings.Join(parts, ", "))

		if c.stopped() {
			return
		}
	}
}
