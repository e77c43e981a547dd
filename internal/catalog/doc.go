// Package catalog validates meal catalog documents and turns them into typed
// catalogs.
//
// # Schema
//
// A meal catalog maps meal names to ingredients, and ingredients to an
// amount made of exactly a quantity (a number) and a unit (a string):
//
//	risotto:
//	  rice:
//	    quantity: 500
//	    unit: g
//	  parmesan:
//	    quantity: 50
//	    unit: g
//	fried rice:
//	  rice:
//	    quantity: 400
//	    unit: g
//	pasta: {}      # a meal may have no ingredient
//
// An ingredient must be measured in the same unit everywhere in the catalog,
// which is what lets a shopping list add up the amounts of several meals.
//
// # Checks
//
// Validate applies the structural checks top-down (root, meal names, meal
// values, ingredient names, ingredient values, amount keys, quantity, unit)
// and then compares the units of every ingredient across meals. It stops at
// the first violation; Diagnose reports all of them. Negative quantities are
// accepted.
package catalog
