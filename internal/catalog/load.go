package catalog

import (
	"errors"
	"log/slog"

	"food-shopping-list/internal/diagnostic"
	"food-shopping-list/internal/document"
)

// Load reads the catalog file at path, validates it and builds the catalog.
// Schema violations are returned as a *diagnostic.FormatError naming the file.
func Load(path string) (Catalog, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc); err != nil {
		var fe *diagnostic.FormatError
		if errors.As(err, &fe) {
			fe.File = path
		}

		return nil, err
	}

	c := Build(doc)
	slog.Debug("Meal catalog loaded.", "file", path, "meals", len(c))

	return c, nil
}

// Check reads the catalog file at path and reports every schema violation it
// contains. The returned error is only about reading or parsing the file.
func Check(path string) (*diagnostic.Diagnostics, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		return nil, err
	}

	res := Diagnose(doc)
	res.SetFile(path)
	slog.Debug("Meal catalog checked.", "file", path, "errors", len(res.Errors))

	return res, nil
}
