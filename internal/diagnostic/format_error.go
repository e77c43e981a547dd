package diagnostic

import (
	"errors"
)

// Code identifies a kind of schema violation.
type Code string

// Codes shared by every document schema.
const (
	CodeNotAMapping    Code = "not_a_mapping"
	CodeKeyNotString   Code = "key_not_string"
	CodeValueNotString Code = "value_not_string"
	CodeUnknownKey     Code = "unknown_key"
)

// Codes of the meal catalog schema.
const (
	CodeMealNameNotString         Code = "meal_name_not_string"
	CodeMealValueNotMapping       Code = "meal_value_not_mapping"
	CodeIngredientNameNotString   Code = "ingredient_name_not_string"
	CodeIngredientValueNotMapping Code = "ingredient_value_not_mapping"
	CodeMissingQuantity           Code = "missing_quantity"
	CodeMissingUnit               Code = "missing_unit"
	CodeUnexpectedKey             Code = "unexpected_key"
	CodeQuantityNotNumber         Code = "quantity_not_number"
	CodeUnitNotString             Code = "unit_not_string"
	CodeInconsistentUnit          Code = "inconsistent_unit"
)

// FormatError is a schema violation found in a structured document. It is
// always fatal to the load of that document.
type FormatError struct {
	Diagnostic
}

// Error renders the message the way it is shown to users:
// "Error in meals.yaml: the root element is not a dictionary".
func (e *FormatError) Error() string {
	if e.File == "" {
		return e.Message
	}

	return "Error in " + e.File + ": " + e.Message
}

// CodeOf returns the code of the *FormatError wrapped in err, or "" if there
// is none.
func CodeOf(err error) Code {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Code
	}

	return ""
}
