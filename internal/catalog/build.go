package catalog

import (
	"food-shopping-list/internal/document"
)

// Build converts a document that passed Validate into a Catalog. It does not
// validate: values of the wrong shape are skipped and a quantity that is not a
// number reads as zero. Integer quantities are widened to float64. The result
// shares nothing with doc.
func Build(doc *document.Node) Catalog {
	c := Catalog{}

	for _, mealEntry := range doc.SortedEntries() {
		mealName, ok := mealEntry.Key.AsString()
		if !ok {
			continue
		}

		meal := Meal{}

		for _, ingredientEntry := range mealEntry.Value.SortedEntries() {
			ingredient, ok := ingredientEntry.Key.AsString()
			if !ok {
				continue
			}

			quantityNode, _ := ingredientEntry.Value.Lookup(KeyQuantity)
			unitNode, _ := ingredientEntry.Value.Lookup(KeyUnit)

			quantity, _ := quantityNode.Number()
			unit, _ := unitNode.AsString()

			meal[ingredient] = IngredientAmount{Quantity: quantity, Unit: unit}
		}

		c[mealName] = meal
	}

	return c
}
