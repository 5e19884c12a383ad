package svlex

// IdentifierInfo is the payload of Identifier and SystemIdentifier tokens,
// and of Unknown tokens (with Category IdentifierUnknown).
type IdentifierInfo struct {
	Raw      []byte
	Category IdentifierCategory
}

// DirectiveInfo is the payload of Directive and MacroUsage tokens.
type DirectiveInfo struct {
	Raw  []byte
	Kind DirectiveKind
}

// StringLiteralInfo is the payload of StringLiteral tokens: the raw
// (un-decoded) lexeme plus the decoded byte string with escapes resolved.
type StringLiteralInfo struct {
	Raw     []byte
	Decoded string
}

// NumericLiteralKind distinguishes the shape of a NumericLiteralInfo's value.
type NumericLiteralKind uint8

const (
	NumericSignedInt NumericLiteralKind = iota
	NumericReal
	NumericVector
	NumericSingleBit
)

// NumericLiteralInfo is the payload of IntegerLiteral and RealLiteral tokens.
// Exactly one of the kind-specific fields is meaningful, selected by Kind.
type NumericLiteralInfo struct {
	Kind NumericLiteralKind

	// NumericSignedInt
	IntValue int32

	// NumericReal
	RealValue float64

	// NumericVector
	Vector LogicVector

	// NumericSingleBit (unsized '0, '1, 'x, 'z)
	Bit LogicDigit
}

// LogicDigit is a single four-valued logic digit, used for the unsized
// single-bit literal forms ('0, '1, 'x, 'z).
type LogicDigit uint8

const (
	Logic0 LogicDigit = iota
	Logic1
	LogicX
	LogicZ
)

func (d LogicDigit) String() string {
	switch d {
	case Logic0:
		return "0"
	case Logic1:
		return "1"
	case LogicX:
		return "x"
	case LogicZ:
		return "z"
	}
	return "?"
}

// VectorDigit is one scanned digit of a sized or unsized vector literal, at
// the literal's own radix (0-15 for hex, narrower for lower bases) or one of
// the two unknown/high-impedance markers. Unlike original_source's
// VectorBuilder, this does not expand each digit into its constituent
// 4-state bits at the declared width -- that's a width/sign semantic-analysis
// concern belonging to a later compilation stage, not this lexer (see
// DESIGN.md's "Vector digit representation" entry).
type VectorDigit uint8

const (
	vectorDigitMax      VectorDigit = 15
	VectorDigitZ        VectorDigit = 0xFE
	VectorDigitX        VectorDigit = 0xFF
)

func (d VectorDigit) String() string {
	switch d {
	case VectorDigitX:
		return "x"
	case VectorDigitZ:
		return "z"
	}
	if d <= vectorDigitMax {
		const hexDigits = "0123456789abcdef"
		return string(hexDigits[d])
	}
	return "?"
}

// LogicVector is a sized or unsized SystemVerilog vector literal's digits,
// most-significant digit first, together with its declared size and
// signedness.
//
// Size is the declared bit width for a sized literal (size'base...); for an
// unsized literal (no leading size before the apostrophe) Sized is false and
// Size reflects the number of digits actually scanned.
type LogicVector struct {
	Size   uint32
	Signed bool
	Sized  bool
	Base   NumberBase
	Digits []VectorDigit
}

// NumberBase is the radix selector for a sized or unsized vector literal.
type NumberBase uint8

const (
	BaseDecimal NumberBase = iota
	BaseOctal
	BaseHex
	BaseBinary
)

func (b NumberBase) String() string {
	switch b {
	case BaseDecimal:
		return "decimal"
	case BaseOctal:
		return "octal"
	case BaseHex:
		return "hex"
	case BaseBinary:
		return "binary"
	}
	return "invalid"
}
