package svlex

// DiagCode is a diagnostic code for a recoverable lexical error.
type DiagCode uint

const (
	diagEmpty DiagCode = iota

	UnicodeBOM
	UTF8Char
	NonPrintableChar
	EmbeddedNull

	UnterminatedStringLiteral
	NewlineInStringLiteral
	OctalEscapeCodeTooBig
	InvalidHexEscapeCode
	UnknownEscapeCode

	EscapedWhitespace
	MisplacedDirectiveChar

	MissingFractionalDigits
	MissingExponentDigits
	RealExponentTooLarge
	SignedLiteralTooLarge

	IntegerSizeZero
	IntegerSizeTooLarge
	MissingVectorBase
	MissingVectorDigits
	InvalidUnsizedLiteral

	UnterminatedBlockComment
	NestedBlockComment
	SplitBlockCommentInDirective
)

var diagNames = []string{
	diagEmpty: "empty",

	UnicodeBOM:       "UnicodeBOM",
	UTF8Char:         "UTF8Char",
	NonPrintableChar: "NonPrintableChar",
	EmbeddedNull:     "EmbeddedNull",

	UnterminatedStringLiteral: "UnterminatedStringLiteral",
	NewlineInStringLiteral:    "NewlineInStringLiteral",
	OctalEscapeCodeTooBig:     "OctalEscapeCodeTooBig",
	InvalidHexEscapeCode:      "InvalidHexEscapeCode",
	UnknownEscapeCode:         "UnknownEscapeCode",

	EscapedWhitespace:      "EscapedWhitespace",
	MisplacedDirectiveChar: "MisplacedDirectiveChar",

	MissingFractionalDigits: "MissingFractionalDigits",
	MissingExponentDigits:   "MissingExponentDigits",
	RealExponentTooLarge:    "RealExponentTooLarge",
	SignedLiteralTooLarge:   "SignedLiteralTooLarge",

	IntegerSizeZero:       "IntegerSizeZero",
	IntegerSizeTooLarge:   "IntegerSizeTooLarge",
	MissingVectorBase:     "MissingVectorBase",
	MissingVectorDigits:   "MissingVectorDigits",
	InvalidUnsizedLiteral: "InvalidUnsizedLiteral",

	UnterminatedBlockComment:     "UnterminatedBlockComment",
	NestedBlockComment:           "NestedBlockComment",
	SplitBlockCommentInDirective: "SplitBlockCommentInDirective",
}

func (c DiagCode) String() string {
	i := int(c)
	if i < 0 || len(diagNames) <= i {
		return "invalid"
	}
	return diagNames[c]
}

// Diagnostic is a single recorded lexical diagnostic, with a resolved source
// location.
type Diagnostic struct {
	Code DiagCode
	Loc  Location
}

func (d Diagnostic) String() string {
	return d.Loc.String() + ": " + d.Code.String()
}

// DiagnosticSink receives diagnostics as the lexer emits them. Implementations
// must be append-only and are expected to be used by a single writer at a
// time (one sink per lexer session; see the concurrency model in spec.md §5).
type DiagnosticSink interface {
	Add(code DiagCode, loc Location)
}

// SliceSink is the default DiagnosticSink: it accumulates diagnostics in
// source order into a slice.
type SliceSink struct {
	Diagnostics []Diagnostic
}

// NewSliceSink returns an empty SliceSink.
func NewSliceSink() *SliceSink {
	return &SliceSink{}
}

func (s *SliceSink) Add(code DiagCode, loc Location) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Code: code, Loc: loc})
}
