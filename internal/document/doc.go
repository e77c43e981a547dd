// Package document turns structured text files into an untyped tree of
// mappings, sequences and scalars that validators can inspect without
// trusting the file.
//
// # Node
//
// A Node is a tagged union: its Kind says which of Entries, Items, Str, Int
// or Float holds the value. Mapping keys are nodes too, because a YAML key
// such as `1:` is an integer and must be reported as such rather than being
// silently turned into text.
//
// # Syntaxes
//
// The syntax is chosen from the file extension:
//
//	.yaml .yml .json   gopkg.in/yaml.v3
//	.toml              github.com/pelletier/go-toml/v2
//	.hcl               github.com/hashicorp/hcl/v2
//
// All of them produce the same tree for the same data, so a meal catalog may
// be written in whichever one the user prefers.
//
// Parser failures are wrapped in a *SyntaxError; a file that does not exist
// yields a *NotFoundError.
package document
