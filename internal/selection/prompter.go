package selection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"food-shopping-list/internal/catalog"
	"food-shopping-list/internal/texts"
)

// Prompter talks with the user on a console.
type Prompter struct {
	In    io.Reader
	Out   io.Writer
	Texts texts.Table

	reader *bufio.Reader
}

// Run lists names, then reads lines from In until one is a valid selection.
// A rejected line is explained and the user asked again, with no limit on the
// number of attempts. If In ends first, Run returns an error wrapping
// io.ErrUnexpectedEOF.
func (p *Prompter) Run(names []string) ([]string, error) {
	p.ShowMeals(names)

	for {
		fmt.Fprintln(p.Out, p.Texts.Text(texts.PromptMealSelection))

		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		selected, err := Parse(line, names)
		if err == nil {
			slog.Debug("Selection accepted.", "input", line, "meals", len(selected))
			return selected, nil
		}

		var se *Error
		if !errors.As(err, &se) {
			return nil, err
		}

		slog.Debug("Selection rejected.", "input", line, "reason", se.Code)
		fmt.Fprintf(p.Out, "%v. %s\n", err, p.Texts.Text(texts.InvalidInputTryAgain))
	}
}

// readLine returns the next line of In, of any length, without its line
// ending. A last line lacking a newline still counts.
func (p *Prompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return "", fmt.Errorf("failed to read the selection: %w", err)
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// ShowMeals prints the numbered list of names.
func (p *Prompter) ShowMeals(names []string) {
	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, p.Texts.Text(texts.IntroduceAvailableMeals))

	for i, name := range names {
		fmt.Fprintf(p.Out, "%d. %s\n", i+1, name)
	}

	fmt.Fprintln(p.Out)
}

// Report prints the chosen meals.
func (p *Prompter) Report(selected []string) {
	if len(selected) == 0 {
		fmt.Fprintln(p.Out, p.Texts.Text(texts.NoMealChosen))
		return
	}

	fmt.Fprintln(p.Out, p.Texts.Text(texts.ChosenMeals))

	for _, name := range selected {
		fmt.Fprintf(p.Out, "- %s\n", name)
	}
}

// ReportShoppingList prints the total amount of every ingredient to buy.
// Nothing is printed for an empty list.
func (p *Prompter) ReportShoppingList(items []catalog.ShoppingItem) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, p.Texts.Text(texts.ShoppingList))

	for _, item := range items {
		fmt.Fprintf(p.Out, "- %s: %s %s (%s)\n", item.Ingredient,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64), item.Unit, strings.Join(item.Meals, ", "))
	}
}
