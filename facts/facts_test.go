package facts

import "testing"

func TestDirectiveKind(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"include", Include},
		{"define", Other},
		{"ifdef", Other},
		{"timescale", Other},
		{"MY_CUSTOM_MACRO", MacroUsage},
	}
	for _, c := range cases {
		if got := DirectiveKind(c.name); got != c.want {
			t.Errorf("DirectiveKind(%q) = %v; want %v", c.name, got, c.want)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, name := range []string{"module", "endmodule", "always_ff", "logic"} {
		if !IsKeyword(name) {
			t.Errorf("IsKeyword(%q) = false; want true", name)
		}
	}
	for _, name := range []string{"my_signal", "foo_bar"} {
		if IsKeyword(name) {
			t.Errorf("IsKeyword(%q) = true; want false", name)
		}
	}
}

func TestLoadTableRejectsMalformedNames(t *testing.T) {
	bad := []byte("include:\n  - \"not an identifier!\"\n")
	if err := loadTable(bad); err == nil {
		t.Fatalf("loadTable accepted a malformed directive name")
	}
}
