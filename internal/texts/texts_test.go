package texts

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-shopping-list/internal/diagnostic"
	"food-shopping-list/internal/document"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  *document.Node
		code diagnostic.Code
		msg  string
	}{
		{
			name: "root is a string",
			doc:  document.String("hello"),
			code: diagnostic.CodeNotAMapping,
			msg:  "the root element is not a dictionary",
		},
		{
			name: "root is a sequence",
			doc:  document.Sequence(document.String("hello")),
			code: diagnostic.CodeNotAMapping,
			msg:  "the root element is not a dictionary",
		},
		{
			name: "key is a number",
			doc:  document.FromValue(map[any]any{404: "not found"}),
			code: diagnostic.CodeKeyNotString,
			msg:  "the key '404' is not a string",
		},
		{
			name: "value is a number",
			doc:  document.FromValue(map[any]any{"answer": 42}),
			code: diagnostic.CodeValueNotString,
			msg:  "the value of the key 'answer' is not a string",
		},
		{
			name: "value is a mapping",
			doc:  document.FromValue(map[any]any{"greeting": map[any]any{"en": "hello"}}),
			code: diagnostic.CodeValueNotString,
			msg:  "the value of the key 'greeting' is not a string",
		},
		{
			name: "first key in order is reported",
			doc: document.Mapping(
				document.Pair("zebra", document.Int(1)),
				document.Pair("apple", document.Int(2)),
			),
			code: diagnostic.CodeValueNotString,
			msg:  "the value of the key 'apple' is not a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.doc)
			require.Error(t, err)
			assert.Equal(t, tt.code, diagnostic.CodeOf(err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(document.FromValue(map[any]any{})))
	assert.NoError(t, Validate(document.FromValue(map[any]any{
		"hello":         "hi",
		"unknown_thing": "still fine",
	})))
}

func TestDefault(t *testing.T) {
	d := Default()

	for _, key := range []string{
		IntroduceAvailableMeals, PromptMealSelection, InvalidInputTryAgain,
		NoMealChosen, ChosenMeals, ShoppingList,
	} {
		assert.NotEmpty(t, d[key], key)
	}

	assert.Len(t, Keys(), len(d))
	assert.True(t, d.Check().IsValid())
	assert.Empty(t, d.Check().Warnings)
}

func TestTable_Text(t *testing.T) {
	table := Table{IntroduceAvailableMeals: "Voici les plats disponibles :"}

	assert.Equal(t, "Voici les plats disponibles :", table.Text(IntroduceAvailableMeals))
	assert.Equal(t, Default()[NoMealChosen], table.Text(NoMealChosen))
	assert.Equal(t, "no_such_key", table.Text("no_such_key"))
}

func TestTable_Check(t *testing.T) {
	table := Table{
		"introduce_available_meal": "Meals:",
		"shopping_list":            "To buy:",
		"completely_unrelated":     "?",
	}

	res := table.Check()
	require.True(t, res.IsValid())
	require.Len(t, res.Warnings, 2)

	assert.Equal(t, "completely_unrelated", res.Warnings[0].Path)
	assert.Empty(t, res.Warnings[0].Suggestions)

	assert.Equal(t, diagnostic.CodeUnknownKey, res.Warnings[1].Code)
	assert.Equal(t, "introduce_available_meal", res.Warnings[1].Path)
	assert.Equal(t, []string{IntroduceAvailableMeals}, res.Warnings[1].Suggestions)
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"fr.yaml":  {Data: []byte("no_meal_chosen: Aucun plat choisi.\n")},
		"bad.yaml": {Data: []byte("no_meal_chosen: 3\n")},
	}

	table, err := Load(fsys, "fr.yaml")
	require.NoError(t, err)
	assert.Equal(t, Table{NoMealChosen: "Aucun plat choisi."}, table)

	_, err = Load(fsys, "bad.yaml")
	require.Error(t, err)
	assert.Equal(t, "Error in bad.yaml: the value of the key 'no_meal_chosen' is not a string", err.Error())

	var fe *diagnostic.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Line)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.toml")
	require.NoError(t, os.WriteFile(path, []byte(`chosen_meals = "Picked:"`+"\n"), 0o600))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Picked:", table.Text(ChosenMeals))

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such file: ")
}
