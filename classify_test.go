package svlex

import "testing"

func TestDigitPredicates(t *testing.T) {
	cases := []struct {
		c                                    byte
		decimal, octal, hex, binary, logic   bool
	}{
		{'0', true, true, true, true, false},
		{'7', true, true, true, false, false},
		{'8', true, false, true, false, false},
		{'9', true, false, true, false, false},
		{'a', false, false, true, false, false},
		{'f', false, false, true, false, false},
		{'g', false, false, false, false, false},
		{'x', false, false, false, false, true},
		{'z', false, false, false, false, true},
		{'?', false, false, false, false, true},
	}
	for _, c := range cases {
		if got := isDecimalDigitByte(c.c); got != c.decimal {
			t.Errorf("isDecimalDigitByte(%q) = %v; want %v", c.c, got, c.decimal)
		}
		if got := isOctalDigitByte(c.c); got != c.octal {
			t.Errorf("isOctalDigitByte(%q) = %v; want %v", c.c, got, c.octal)
		}
		if got := isHexDigitByte(c.c); got != c.hex {
			t.Errorf("isHexDigitByte(%q) = %v; want %v", c.c, got, c.hex)
		}
		if got := isBinaryDigitByte(c.c); got != c.binary {
			t.Errorf("isBinaryDigitByte(%q) = %v; want %v", c.c, got, c.binary)
		}
		if got := isLogicDigitByte(c.c); got != c.logic {
			t.Errorf("isLogicDigitByte(%q) = %v; want %v", c.c, got, c.logic)
		}
	}
}

func TestDigitValue(t *testing.T) {
	if digitValue('9') != 9 {
		t.Errorf("digitValue('9') = %d; want 9", digitValue('9'))
	}
	if digitValue('a') != 10 || digitValue('F') != 15 {
		t.Errorf("digitValue hex mismatch: a=%d F=%d", digitValue('a'), digitValue('F'))
	}
}

func TestUTF8SeqBytes(t *testing.T) {
	cases := []struct {
		c    byte
		want int
	}{
		{0x41, 1},
		{0xC2, 2},
		{0xE2, 3},
		{0xF0, 4},
	}
	for _, c := range cases {
		if got := utf8SeqBytes(c.c); got != c.want {
			t.Errorf("utf8SeqBytes(%#x) = %d; want %d", c.c, got, c.want)
		}
	}
}
