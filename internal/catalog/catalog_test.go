package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = Catalog{
	"risotto": Meal{
		"rice":     {Quantity: 500, Unit: "g"},
		"parmesan": {Quantity: 50, Unit: "g"},
	},
	"paella": Meal{
		"rice":    {Quantity: 300, Unit: "g"},
		"saffron": {Quantity: 0.5, Unit: "tsp"},
	},
	"pasta": Meal{},
}

func TestCatalog_Names(t *testing.T) {
	assert.Equal(t, []string{"paella", "pasta", "risotto"}, testCatalog.Names())
	assert.Empty(t, Catalog{}.Names())
}

func TestCatalog_ShoppingList(t *testing.T) {
	list, err := testCatalog.ShoppingList([]string{"risotto", "paella", "pasta"})
	require.NoError(t, err)

	assert.Equal(t, []ShoppingItem{
		{Ingredient: "parmesan", IngredientAmount: IngredientAmount{Quantity: 50, Unit: "g"}, Meals: []string{"risotto"}},
		{Ingredient: "rice", IngredientAmount: IngredientAmount{Quantity: 800, Unit: "g"}, Meals: []string{"risotto", "paella"}},
		{Ingredient: "saffron", IngredientAmount: IngredientAmount{Quantity: 0.5, Unit: "tsp"}, Meals: []string{"paella"}},
	}, list)
}

func TestCatalog_ShoppingListEmpty(t *testing.T) {
	list, err := testCatalog.ShoppingList(nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = testCatalog.ShoppingList([]string{"pasta"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalog_ShoppingListUnknownMeal(t *testing.T) {
	_, err := testCatalog.ShoppingList([]string{"risotto", "lasagna"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"lasagna"`)
}
