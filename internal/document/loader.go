package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Format is a supported document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// JSON is read by the YAML parser, of which it is a subset.
var formatsByExt = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatYAML,
	".toml": FormatTOML,
	".hcl":  FormatHCL,
}

// ErrUnsupportedFormat is returned for file names whose extension does not
// select a known syntax.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// SyntaxError reports a document that the underlying parser rejected.
type SyntaxError struct {
	File string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error in %s: %v", e.File, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// NotFoundError reports a document file that does not exist.
type NotFoundError struct {
	File string
}

func (e *NotFoundError) Error() string {
	return "No such file: " + e.File
}

func (e *NotFoundError) Unwrap() error { return fs.ErrNotExist }

// FormatOf returns the syntax selected by the extension of name.
func FormatOf(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}

	exts := make([]string, 0, len(formatsByExt))
	for e := range formatsByExt {
		exts = append(exts, e)
	}

	slices.Sort(exts)

	return "", fmt.Errorf("%s: %w (expected one of %s)", name, ErrUnsupportedFormat, strings.Join(exts, ", "))
}

// Parse parses data in the given format. name is only used in messages.
func Parse(data []byte, name string, format Format) (*Node, error) {
	var (
		n   *Node
		err error
	)

	switch format {
	case FormatYAML:
		n, err = parseYAML(data)
	case FormatTOML:
		n, err = parseTOML(data)
	case FormatHCL:
		n, err = parseHCL(data, name)
	default:
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, &SyntaxError{File: name, Err: err}
	}

	slog.Debug("Document parsed.", "file", name, "format", format, "root", n.Kind)

	return n, nil
}

// Load reads a whole document from r, choosing the syntax from name.
func Load(r io.Reader, name string) (*Node, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return Parse(data, name, format)
}

// LoadFile loads the document stored at path. The file is closed before
// LoadFile returns.
func LoadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{File: path}
		}

		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, path)
}

// LoadFS loads the document called name from fsys, for instance from files
// embedded in the binary.
func LoadFS(fsys fs.FS, name string) (*Node, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{File: name}
		}

		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	return Load(f, name)
}
