package catalog

import (
	"food-shopping-list/internal/diagnostic"
	"food-shopping-list/internal/document"
)

// Keys of an ingredient amount.
const (
	KeyQuantity = "quantity"
	KeyUnit     = "unit"
)

var amountKeys = []string{KeyQuantity, KeyUnit}

// Validate checks that doc is a well-formed meal catalog and returns the first
// violation found as a *diagnostic.FormatError. Meals and ingredients are
// visited in key order so the reported violation is deterministic.
func Validate(doc *document.Node) error {
	res := check(doc, true)
	if first := res.First(); first != nil {
		return first
	}

	return nil
}

// Diagnose is like Validate but goes on after a violation and reports all of
// them. Within one ingredient only the first violation is reported. Its first
// error is always the one Validate returns.
func Diagnose(doc *document.Node) *diagnostic.Diagnostics {
	return check(doc, false)
}

// checker walks a catalog document. In fail-fast mode the walk stops at the
// first error.
type checker struct {
	res      *diagnostic.Diagnostics
	failFast bool
	units    unitUsage
}

func check(doc *document.Node, failFast bool) *diagnostic.Diagnostics {
	c := &checker{
		res:      &diagnostic.Diagnostics{},
		failFast: failFast,
		units:    unitUsage{},
	}

	if !doc.IsMapping() {
		c.report(diagnostic.CodeNotAMapping, doc, "", "the root element is not a dictionary")
		return c.res
	}

	for _, meal := range doc.SortedEntries() {
		c.checkMeal(meal)

		if c.stopped() {
			return c.res
		}
	}

	// Units can only be compared once every meal has been seen.
	c.checkUnits()

	return c.res
}

func (c *checker) stopped() bool {
	return c.failFast && c.res.HasErrors()
}

func (c *checker) checkMeal(meal document.Entry) {
	name, ok := meal.Key.AsString()
	if !ok {
		c.report(diagnostic.CodeMealNameNotString, meal.Key, "",
			"the key '%s' is not a string", meal.Key.Text())

		return
	}

	if !meal.Value.IsMapping() {
		c.report(diagnostic.CodeMealValueNotMapping, meal.Value, name,
			"the value of the key '%s' is not a dictionary", name)

		return
	}

	for _, ingredient := range meal.Value.SortedEntries() {
		c.checkIngredient(name, ingredient)

		if c.stopped() {
			return
		}
	}
}

// checkIngredient checks one ingredient of meal and records its unit.
func (c *checker) checkIngredient(meal string, ingredient document.Entry) {
	name, ok := ingredient.Key.AsString()
	if !ok {
		c.report(diagnostic.CodeIngredientNameNotString, ingredient.Key, meal,
			"ingredient '%s' in meal '%s' is not a string", ingredient.Key.Text(), meal)

		return
	}

	path := meal + "." + name
	amount := ingredient.Value

	if !amount.IsMapping() {
		c.report(diagnostic.CodeIngredientValueNotMapping, amount, path,
			"value of ingredient '%s' in meal '%s' is not a dictionary", name, meal)

		return
	}

	if !c.checkAmountKeys(amount, meal, name, path) {
		return
	}

	quantity, _ := amount.Lookup(KeyQuantity)
	if _, ok := quantity.Number(); !ok {
		c.report(diagnostic.CodeQuantityNotNumber, quantity, path,
			"key '%s' of ingredient '%s' in meal '%s' is not a number", KeyQuantity, name, meal)

		return
	}

	unitNode, _ := amount.Lookup(KeyUnit)

	unit, ok := unitNode.AsString()
	if !ok {
		c.report(diagnostic.CodeUnitNotString, unitNode, path,
			"key '%s' of ingredient '%s' in meal '%s' is not a string", KeyUnit, name, meal)

		return
	}

	c.units.record(name, unit, meal)
}
