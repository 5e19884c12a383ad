// Package facts is the character/syntax facts collaborator: pure,
// data-driven classification functions the lexer (and, eventually, a
// parser) consult but never mutate. It owns no scanning state of its own.
package facts

import (
	_ "embed"
	"regexp"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

//go:embed directives.yaml
var directivesYAML []byte

// Kind classifies a directive name's effect on lexing mode.
type Kind uint8

const (
	// MacroUsage is any directive name not recognized as a built-in --
	// a reference to a user `define'd macro.
	MacroUsage Kind = iota
	Include
	Other
)

type directiveTable struct {
	Include  []string `yaml:"include"`
	Other    []string `yaml:"other"`
	Keywords []string `yaml:"keywords"`
}

var (
	includeSet = map[string]struct{}{}
	otherSet   = map[string]struct{}{}
	keywordSet = map[string]struct{}{}

	// identifierShape validates every name loaded from directives.yaml at
	// init time, so a typo in the embedded table fails fast rather than
	// silently misclassifying a directive at lex time.
	identifierShape = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)
)

func init() {
	if err := loadTable(directivesYAML); err != nil {
		panic(xerrors.Errorf("facts: loading embedded directive table: %w", err))
	}
}

func loadTable(data []byte) error {
	var t directiveTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return xerrors.Errorf("parsing directive table: %w", err)
	}
	for _, name := range t.Include {
		if !identifierShape.MatchString(name) {
			return xerrors.Errorf("malformed include directive name %q", name)
		}
		includeSet[name] = struct{}{}
	}
	for _, name := range t.Other {
		if !identifierShape.MatchString(name) {
			return xerrors.Errorf("malformed directive name %q", name)
		}
		otherSet[name] = struct{}{}
	}
	for _, name := range t.Keywords {
		if !identifierShape.MatchString(name) {
			return xerrors.Errorf("malformed keyword %q", name)
		}
		keywordSet[name] = struct{}{}
	}
	return nil
}

// DirectiveKind classifies name (a directive's text with its leading
// backquote already stripped) as an include directive, another built-in
// directive, or a macro usage reference.
func DirectiveKind(name string) Kind {
	if _, ok := includeSet[name]; ok {
		return Include
	}
	if _, ok := otherSet[name]; ok {
		return Other
	}
	return MacroUsage
}

// IsKeyword reports whether name is a reserved SystemVerilog keyword.
//
// The lexer itself never calls this: it always classifies a bare
// identifier-shaped lexeme as Identifier and leaves keyword reclassification
// to a later parsing stage, per the lexer's design notes.
func IsKeyword(name string) bool {
	_, ok := keywordSet[name]
	return ok
}
