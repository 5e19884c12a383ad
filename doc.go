// Package svlex lexes SystemVerilog source text into a stream of tokens.
//
// A Lexer is constructed over a NUL-terminated SourceBuffer (or, via
// NewLexerFromReader, anything implementing io.Reader) and pulled one
// token at a time with Lex. Malformed input is never fatal: the lexer
// reports a Diagnostic to its DiagnosticSink and recovers locally, so a
// single Lexer always produces a complete token stream ending in
// EndOfFile.
//
//	arena := svlex.NewArena()
//	sink := svlex.NewSliceSink()
//	lexer := svlex.NewLexer(file, svlex.NewSourceBuffer(src), arena, sink)
//	for {
//		tok := lexer.Lex()
//		if tok.Kind == svlex.EndOfFile {
//			break
//		}
//	}
//
// Token and trivia payloads are interned through the Lexer's Arena, so
// equal lexemes across a buffer share backing storage. Directive-mode
// lexing (the text following a `` ` `` directive other than an include or
// macro usage) treats an unescaped newline as significant, surfaced as an
// EndOfDirective token.
package svlex
