package svlex

import "go.svlex.dev/svlex/facts"

// lexDirective scans a backquote-prefixed directive name, the backquote
// having already been consumed by lexToken, and classifies it through the
// facts package to decide the lexer's resulting mode.
func (l *Lexer) lexDirective() (TokenKind, interface{}) {
	c := l.peek(0)
	if !isAlphaByte(c) && c != '_' {
		l.addError(MisplacedDirectiveChar)
		return Unknown, &IdentifierInfo{Raw: l.lexeme(), Category: IdentifierUnknown}
	}
	l.advance(1)
	l.scanIdentifierTail()

	raw := l.lexeme()
	name := string(raw[1:]) // drop the leading backquote

	switch facts.DirectiveKind(name) {
	case facts.Include:
		l.mode = ModeInclude
		return Directive, &DirectiveInfo{Raw: raw, Kind: DirectiveInclude}
	case facts.MacroUsage:
		return MacroUsage, &DirectiveInfo{Raw: raw, Kind: DirectiveMacroUsage}
	default:
		l.mode = ModeDirective
		return Directive, &DirectiveInfo{Raw: raw, Kind: DirectiveOther}
	}
}
