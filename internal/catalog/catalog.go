package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// IngredientAmount is the quantity of an ingredient needed by a meal.
type IngredientAmount struct {
	Quantity float64
	Unit     string
}

// Meal maps ingredient names to their amount.
type Meal map[string]IngredientAmount

// Catalog maps meal names to their ingredients. Across a catalog, every
// ingredient is measured in a single unit.
type Catalog map[string]Meal

// Names returns the meal names in lexicographic order. Selections refer to
// meals by their 1-based position in this list.
func (c Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// ShoppingItem is one line of a shopping list: the total amount of an
// ingredient and the meals that need it.
type ShoppingItem struct {
	Ingredient string
	IngredientAmount
	Meals []string
}

// ShoppingList adds up the ingredients of the given meals. Items are sorted by
// ingredient name; the meals of an item keep the order of meals.
func (c Catalog) ShoppingList(meals []string) ([]ShoppingItem, error) {
	byIngredient := map[string]*ShoppingItem{}

	for _, name := range meals {
		meal, ok := c[name]
		if !ok {
			return nil, fmt.Errorf("unknown meal %q", name)
		}

		for ingredient, amount := range meal {
			item, ok := byIngredient[ingredient]
			if !ok {
				item = &ShoppingItem{Ingredient: ingredient, IngredientAmount: IngredientAmount{Unit: amount.Unit}}
				byIngredient[ingredient] = item
			}

			item.Quantity += amount.Quantity
			item.Meals = append(item.Meals, name)
		}
	}

	list := make([]ShoppingItem, 0, len(byIngredient))
	for _, ingredient := range slices.Sorted(maps.Keys(byIngredient)) {
		list = append(list, *byIngredient[ingredient])
	}

	return list, nil
}
