// Package main provides the CLI entrypoint for food-shopping-list.
//
// food-shopping-list is a meal-planning aid that:
//   - Loads a meal catalog (meal, ingredient, quantity and unit) and checks it
//   - Lists the meals and asks which ones to cook
//   - Prints the chosen meals and the ingredients to buy for them
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"food-shopping-list/internal/catalog"
	"food-shopping-list/internal/cli"
	"food-shopping-list/internal/selection"
	"food-shopping-list/internal/texts"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		os.Exit(1)
	}
}

// run holds the program logic; every error it returns ends the program.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	slog.SetDefault(cli.NewLogger(cfg, stderr))

	table, err := loadTexts(cfg.TextsFile)
	if err != nil {
		return err
	}

	if cfg.Check {
		return check(stdout, cfg.MealsFile)
	}

	meals, err := catalog.Load(cfg.MealsFile)
	if err != nil {
		return err
	}

	prompter := &selection.Prompter{In: stdin, Out: stdout, Texts: table}

	selected, err := prompter.Run(meals.Names())
	if err != nil {
		return err
	}

	prompter.Report(selected)

	items, err := meals.ShoppingList(selected)
	if err != nil {
		return err
	}

	prompter.ReportShoppingList(items)

	return nil
}

// loadTexts returns the text assets of path, or the embedded ones when path
// is empty. Unused keys are only logged.
func loadTexts(path string) (texts.Table, error) {
	if path == "" {
		return texts.Default(), nil
	}

	table, err := texts.LoadFile(path)
	if err != nil {
		return nil, err
	}

	res := table.Check()
	res.SetFile(path)

	for _, w := range res.Warnings {
		slog.Warn("Unused text asset.", "diagnostic", w.String())
	}

	return table, nil
}

// check prints every problem of the meal catalog at path.
func check(out io.Writer, path string) error {
	res, err := catalog.Check(path)
	if err != nil {
		return err
	}

	for _, d := range res.Errors {
		fmt.Fprintln(out, d.String())
	}

	if res.HasErrors() {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%s: %d problem(s) found", path, len(res.Errors))}
	}

	fmt.Fprintf(out, "%s: ok\n", path)

	return nil
}
