package texts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"slices"

	"food-shopping-list/internal/diagnostic"
	"food-shopping-list/internal/document"
	"food-shopping-list/internal/match"
)

// DefaultFile is the name of the text asset file embedded in the binary.
const DefaultFile = "texts.yaml"

// Keys of the text assets used by the program.
const (
	IntroduceAvailableMeals = "introduce_available_meals"
	PromptMealSelection     = "prompt_meal_selection"
	InvalidInputTryAgain    = "invalid_input_try_again"
	NoMealChosen            = "no_meal_chosen"
	ChosenMeals             = "chosen_meals"
	ShoppingList            = "shopping_list"
)

//go:embed texts.yaml
var defaultAssets embed.FS

var builtin = mustLoadDefault()

func mustLoadDefault() Table {
	t, err := Load(defaultAssets, DefaultFile)
	if err != nil {
		panic(fmt.Sprintf("embedded %s: %v", DefaultFile, err))
	}

	return t
}

// Table maps text asset keys to their text. A Table is not modified after it
// is loaded.
type Table map[string]string

// Default returns the embedded English table.
func Default() Table {
	return maps.Clone(builtin)
}

// Keys returns the keys used by the program, sorted.
func Keys() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// Text returns the text of key. A key missing from t falls back to the
// embedded table, and a key unknown to both is returned as is.
func (t Table) Text(key string) string {
	if s, ok := t[key]; ok {
		return s
	}

	if s, ok := builtin[key]; ok {
		return s
	}

	return key
}

// Check reports a warning for each key of t that the program does not use,
// suggesting the closest known keys.
func (t Table) Check() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	known := Keys()

	for _, key := range slices.Sorted(maps.Keys(t)) {
		if _, ok := builtin[key]; ok {
			continue
		}

		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Code:        diagnostic.CodeUnknownKey,
			Message:     fmt.Sprintf("the key '%s' is not used", key),
			Path:        key,
			Suggestions: match.Suggest(key, known),
		})
	}

	return res
}

// Validate checks that doc is a mapping from strings to strings. Keys are
// visited in order and the first violation is returned as a
// *diagnostic.FormatError.
func Validate(doc *document.Node) error {
	if !doc.IsMapping() {
		return formatError(diagnostic.CodeNotAMapping, doc, "", "the root element is not a dictionary")
	}

	for _, e := range doc.SortedEntries() {
		key, ok := e.Key.AsString()
		if !ok {
			return formatError(diagnostic.CodeKeyNotString, e.Key, "",
				fmt.Sprintf("the key '%s' is not a string", e.Key.Text()))
		}

		if _, ok := e.Value.AsString(); !ok {
			return formatError(diagnostic.CodeValueNotString, e.Value, key,
				fmt.Sprintf("the value of the key '%s' is not a string", key))
		}
	}

	return nil
}

func formatError(code diagnostic.Code, at *document.Node, path, message string) *diagnostic.FormatError {
	fe := &diagnostic.FormatError{Diagnostic: diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     code,
		Message:  message,
		Path:     path,
	}}

	if at != nil && at.Pos.IsValid() {
		fe.Line, fe.Column = at.Pos.Line, at.Pos.Column
	}

	return fe
}

// FromDocument converts a document that passed Validate into a Table.
func FromDocument(doc *document.Node) Table {
	t := make(Table, len(doc.Entries))

	for _, e := range doc.Entries {
		key, _ := e.Key.AsString()
		t[key], _ = e.Value.AsString()
	}

	return t
}

// Load reads and validates the text asset file called name in fsys.
func Load(fsys fs.FS, name string) (Table, error) {
	doc, err := document.LoadFS(fsys, name)
	if err != nil {
		return nil, err
	}

	return fromLoaded(doc, name)
}

// LoadFile reads and validates the text asset file at path.
func LoadFile(path string) (Table, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return fromLoaded(doc, path)
}

func fromLoaded(doc *document.Node, name string) (Table, error) {
	if err := Validate(doc); err != nil {
		var fe *diagnostic.FormatError
		if errors.As(err, &fe) {
			fe.File = name
		}

		return nil, err
	}

	t := FromDocument(doc)
	slog.Debug("Text assets loaded.", "file", name, "keys", len(t))

	return t, nil
}
