package styles

import (
	"strings"
	"testing"
)

func TestSheetString(t *testing.T) {
	sheet := New()
	sheet.Add(".wow", "color", "red")
	sheet.Add(".wow", "font-size", "20px")
	sheet.Add("h1", "color", "blue")

	want := ".wow {\n" +
		"    color: red;\n" +
		"    font-size: 20px;\n" +
		"}\n" +
		"h1 {\n" +
		"    color: blue;\n" +
		"}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSheetStringIsSorted(t *testing.T) {
	sheet := New()
	sheet.Add("z-last", "color", "red")
	sheet.Add("a-first", "color", "blue")
	sheet.Add("a-first", "z-prop", "1")
	sheet.Add("a-first", "b-prop", "2")

	got := sheet.String()
	if strings.Index(got, "a-first") > strings.Index(got, "z-last") {
		t.Errorf("selectors not sorted: %q", got)
	}
	if strings.Index(got, "b-prop") > strings.Index(got, "z-prop") {
		t.Errorf("properties not sorted: %q", got)
	}
	if got != sheet.String() {
		t.Error("String() not deterministic across calls")
	}
}

func TestAddOverwrites(t *testing.T) {
	sheet := New()
	sheet.Add("p", "color", "red")
	sheet.Add("p", "color", "green")

	want := "p {\n    color: green;\n}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAddDecls(t *testing.T) {
	sheet := New()
	sheet.Add(".card", "color", "black")
	sheet.AddDecls(".card", Decls{
		"border":  "1px solid #ccc",
		"color":   "gray",
		"padding": "8px",
	})

	want := ".card {\n" +
		"    border: 1px solid #ccc;\n" +
		"    color: gray;\n" +
		"    padding: 8px;\n" +
		"}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWithRuleCopies(t *testing.T) {
	base := New()
	base.Add("p", "color", "red")

	derived := base.WithRule("p", "margin", "0").WithRule("h1", "color", "blue")

	if strings.Contains(base.String(), "margin") {
		t.Errorf("WithRule mutated receiver: %q", base.String())
	}
	if !strings.Contains(derived.String(), "margin: 0;") {
		t.Errorf("WithRule result missing rule: %q", derived.String())
	}
	if !strings.Contains(derived.String(), "h1 {") {
		t.Errorf("chained WithRule missing selector: %q", derived.String())
	}
}

func TestWithDeclsCopies(t *testing.T) {
	base := New()
	derived := base.WithDecls(".btn", Decls{"cursor": "pointer"})

	if len(base) != 0 {
		t.Errorf("WithDecls mutated receiver: %v", base)
	}
	if !strings.Contains(derived.String(), "cursor: pointer;") {
		t.Errorf("WithDecls result missing decl: %q", derived.String())
	}
}

func TestStyleTag(t *testing.T) {
	sheet := New()
	sheet.Add("h1", "color", "blue")

	got := sheet.StyleTag().HTML()
	want := "<style>\nh1 {\n    color: blue;\n}\n</style>"
	if got != want {
		t.Errorf("StyleTag().HTML() = %q, want %q", got, want)
	}
}

func TestInline(t *testing.T) {
	tests := []struct {
		name string
		in   Decls
		want string
	}{
		{"empty", Decls{}, ""},
		{"single", Decls{"color": "red"}, "color: red;"},
		{
			"sorted pairs",
			Decls{"font-size": "20px", "color": "red"},
			"color: red;font-size: 20px;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inline(tt.in); got != tt.want {
				t.Errorf("Inline(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	in := "p {\n\tcolor: red;\n}\n"
	want := "p{color:red;}"
	if got := Sanitize(in); got != want {
		t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
	}
}
