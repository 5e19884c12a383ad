package svlex

import "unicode/utf8"

// Character classification and digit-value extraction, ported from
// original_source's CharInfo predicates (isDecimalDigit, isOctalDigit,
// isHexDigit, isBinaryDigit, isLogicDigit, getDigitValue, getHexDigitValue,
// isHorizontalWhitespace, utf8SeqBytes).

func isASCIIByte(c byte) bool {
	return c < 0x80
}

func isAlphaByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDecimalDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOctalDigitByte(c byte) bool {
	return c >= '0' && c <= '7'
}

func isHexDigitByte(c byte) bool {
	return isDecimalDigitByte(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigitByte(c byte) bool {
	return c == '0' || c == '1'
}

// isLogicDigitByte reports whether c is one of the four-valued "unknown" or
// "high-impedance" digits (x, X, z, Z) or the '?' alias for z.
func isLogicDigitByte(c byte) bool {
	switch c {
	case 'x', 'X', 'z', 'Z', '?':
		return true
	}
	return false
}

func isAlphanumericOrUnderscoreByte(c byte) bool {
	return isAlphaByte(c) || isDecimalDigitByte(c) || c == '_'
}

func isHorizontalWhitespaceByte(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNewlineByte(c byte) bool {
	return c == '\n' || c == '\r'
}

// isPrintableByte reports whether c is a printable, non-whitespace ASCII
// byte -- used while scanning escaped identifiers.
func isPrintableByte(c byte) bool {
	return c > ' ' && c < 0x7f
}

// digitValue maps a byte to its numeric value 0-15; the caller is
// responsible for having already validated the digit with one of the
// is*DigitByte predicates above.
func digitValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// utf8SeqBytes estimates the length, in bytes, of the UTF-8 sequence led by
// c, for the sole purpose of skipping past malformed/non-ASCII input after
// diagnosing it. It never validates well-formedness beyond the lead byte.
func utf8SeqBytes(c byte) int {
	switch {
	case c&0x80 == 0x00:
		return 1
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// runeSize reports how many bytes of buf (starting at offset off) make up
// the UTF-8 encoded rune there, falling back to utf8SeqBytes's lead-byte
// estimate when the sequence doesn't actually decode (utf8.RuneError).
func runeSize(buf []byte, off int) int {
	if off >= len(buf) {
		return 1
	}
	r, size := utf8.DecodeRune(buf[off:])
	if r == utf8.RuneError && size <= 1 {
		return utf8SeqBytes(buf[off])
	}
	return size
}
