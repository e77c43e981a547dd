package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Usage is the one-line synopsis of the program.
const Usage = "Usage: food-shopping-list [options] <meals-file>"

// ExitError is an error that ends the program with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the configuration of one run of the program.
type Config struct {
	// MealsFile is the meal catalog to load.
	MealsFile string
	// TextsFile is a text asset file replacing the embedded one, if not empty.
	TextsFile string
	// Check reports every problem of MealsFile instead of running the prompt.
	Check     bool
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the Config, a boolean
// telling whether the program should exit cleanly (help was requested), or an
// *ExitError. Help and flag errors are written to output.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("food-shopping-list", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, Usage+`

Lists the meals of a catalog, asks which ones to cook and prints what to buy.

Arguments:
  <meals-file>
    Meal catalog (.yaml, .yml, .json, .toml or .hcl).

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := &Config{}
	flagSet.StringVar(&cfg.TextsFile, "texts", "", "Text asset file to use instead of the built-in English texts.")
	flagSet.BoolVar(&cfg.Check, "check", false, "Report every problem of the meal catalog and exit.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	if flagSet.NArg() != 1 {
		slog.Debug("Wrong number of arguments.", "args", flagSet.Args())
		return nil, false, &ExitError{Code: 1, Message: Usage}
	}

	cfg.MealsFile = flagSet.Arg(0)

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 1, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 1, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)

	return cfg, false, nil
}

// NewLogger creates a logger writing to w at the level and in the format of
// cfg. It does not set the global logger.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
