package tag

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"simple", "div", "div", nil},
		{"uppercase normalized", "DIV", "div", nil},
		{"mixed case", "SpAn", "span", nil},
		{"surrounding space", "  p  ", "p", nil},
		{"custom element", "my-widget", "my-widget", nil},
		{"heading", "h1", "h1", nil},
		{"empty", "", "", ErrEmptyName},
		{"whitespace only", "   ", "", ErrEmptyName},
		{"leading digit", "1div", "", ErrInvalidName},
		{"leading hyphen", "-div", "", ErrInvalidName},
		{"angle bracket", "<div>", "", ErrInvalidName},
		{"inner space", "my tag", "", ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if got != nil {
					t.Errorf("New(%q) = %v, want nil on error", tt.in, got)
				}
				return
			}
			if got.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", got.Name(), tt.want)
			}
		})
	}
}

func TestNewFlagsVoidElements(t *testing.T) {
	br, err := New("br")
	if err != nil {
		t.Fatalf("New(br) error = %v", err)
	}
	if !br.Void() {
		t.Error("Void() = false for br, want true")
	}

	div := Must("div")
	if div.Void() {
		t.Error("Void() = true for div, want false")
	}
}

func TestMustPanicsOnInvalidName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must(\"\") did not panic")
		}
	}()
	Must("")
}

func TestNewWithBody(t *testing.T) {
	p, err := NewWithBody("p", "hello")
	if err != nil {
		t.Fatalf("NewWithBody error = %v", err)
	}
	body, ok := p.Body()
	if !ok || body != "hello" {
		t.Errorf("Body() = %q, %v, want %q, true", body, ok, "hello")
	}

	link, err := NewWithBody("a", "home", "nav", "nav")
	if err != nil {
		t.Fatalf("NewWithBody error = %v", err)
	}
	if got := link.HTML(); got != `<a class="nav">home</a>` {
		t.Errorf("HTML() = %q, want %q", got, `<a class="nav">home</a>`)
	}

	if _, err := NewWithBody("", "hello"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("NewWithBody(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestSetAttrKeepsInsertionOrder(t *testing.T) {
	a := Must("a")
	a.SetAttr("href", "/home")
	a.SetAttr("target", "_blank")
	a.SetAttr("rel", "noopener")

	got := a.Attrs()
	want := []Attr{
		{"href", "/home"},
		{"target", "_blank"},
		{"rel", "noopener"},
	}
	if len(got) != len(want) {
		t.Fatalf("Attrs() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Attrs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSetAttrOverwriteKeepsPosition(t *testing.T) {
	d := Must("div")
	d.SetAttr("id", "a")
	d.SetAttr("data-x", "1")
	d.SetAttr("id", "b")

	got := d.Attrs()
	if len(got) != 2 {
		t.Fatalf("Attrs() len = %d, want 2", len(got))
	}
	if got[0] != (Attr{"id", "b"}) {
		t.Errorf("Attrs()[0] = %v, want {id b}", got[0])
	}
	if got[1] != (Attr{"data-x", "1"}) {
		t.Errorf("Attrs()[1] = %v, want {data-x 1}", got[1])
	}
}

func TestSetAttrClassRoutesToClassList(t *testing.T) {
	d := Must("div")
	d.SetAttr("class", "btn")
	d.AddClass("btn")
	d.SetAttr("class", "primary")

	if _, ok := d.Attr("class"); ok {
		t.Error("Attr(class) set, want class kept out of explicit attributes")
	}
	got := d.Classes()
	want := []string{"btn", "primary"}
	if len(got) != len(want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetAttrIgnoresEmptyKey(t *testing.T) {
	d := Must("div")
	d.SetAttr("", "x")
	if len(d.Attrs()) != 0 {
		t.Errorf("Attrs() = %v, want empty after empty key", d.Attrs())
	}
}

func TestAddClass(t *testing.T) {
	tests := []struct {
		name string
		add  []string
		want []string
	}{
		{"single", []string{"btn"}, []string{"btn"}},
		{"ordered", []string{"btn", "primary"}, []string{"btn", "primary"}},
		{"duplicate dropped", []string{"btn", "primary", "btn"}, []string{"btn", "primary"}},
		{"multi token split", []string{"btn primary", "btn"}, []string{"btn", "primary"}},
		{"blank ignored", []string{"", "  ", "btn"}, []string{"btn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Must("div")
			for _, c := range tt.add {
				d.AddClass(c)
			}
			got := d.Classes()
			if len(got) != len(tt.want) {
				t.Fatalf("Classes() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Classes()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSetBodyReplaces(t *testing.T) {
	p := Must("p")
	if _, ok := p.Body(); ok {
		t.Error("Body() set on fresh tag, want unset")
	}
	p.SetBody("first")
	p.SetBody("second")
	if body, _ := p.Body(); body != "second" {
		t.Errorf("Body() = %q, want %q", body, "second")
	}

	p.SetBody("")
	if body, ok := p.Body(); !ok || body != "" {
		t.Errorf("Body() = %q, %v, want empty and set", body, ok)
	}
}

func TestAddChild(t *testing.T) {
	ul := Must("ul")
	ul.AddChild(Must("li").WithBody("one"))
	ul.AddChild(nil)
	ul.AddChild(Must("li").WithBody("two"))

	kids := ul.Children()
	if len(kids) != 2 {
		t.Fatalf("Children() len = %d, want 2", len(kids))
	}
	if kids[0].Name() != "li" || kids[1].Name() != "li" {
		t.Errorf("Children() names = %q, %q, want li, li", kids[0].Name(), kids[1].Name())
	}
}

func TestChainedBuilders(t *testing.T) {
	link := Must("a").
		WithHref("https://example.com").
		WithClass("external").
		WithBody("Example").
		WithAttr("target", "_blank")

	if href, _ := link.Attr("href"); href != "https://example.com" {
		t.Errorf("Attr(href) = %q, want %q", href, "https://example.com")
	}
	if got := link.Classes(); len(got) != 1 || got[0] != "external" {
		t.Errorf("Classes() = %v, want [external]", got)
	}
	if body, _ := link.Body(); body != "Example" {
		t.Errorf("Body() = %q, want Example", body)
	}
}

func TestAttributeShorthands(t *testing.T) {
	in := Must("input").
		WithID("email").
		WithName("email").
		WithType("text")
	in.SetSrc("ignored.png")

	tests := []struct {
		key  string
		want string
	}{
		{"id", "email"},
		{"name", "email"},
		{"type", "text"},
		{"src", "ignored.png"},
	}
	for _, tt := range tests {
		if got, ok := in.Attr(tt.key); !ok || got != tt.want {
			t.Errorf("Attr(%s) = %q, %v, want %q, true", tt.key, got, ok, tt.want)
		}
	}

	img := Must("span").WithStyle("color: red")
	if got, _ := img.Attr("style"); got != "color: red" {
		t.Errorf("Attr(style) = %q, want %q", got, "color: red")
	}
}

func TestAsVoid(t *testing.T) {
	icon := Must("icon-star").AsVoid()
	if !icon.Void() {
		t.Error("Void() = false after AsVoid")
	}
	icon.SetVoid(false)
	if icon.Void() {
		t.Error("Void() = true after SetVoid(false)")
	}
}

func TestAccessorsCopy(t *testing.T) {
	d := Must("div").WithAttr("id", "x").WithClass("a").WithChild(Must("p"))

	d.Attrs()[0].Value = "changed"
	if got, _ := d.Attr("id"); got != "x" {
		t.Errorf("Attr(id) = %q after mutating Attrs() copy, want x", got)
	}

	d.Classes()[0] = "changed"
	if got := d.Classes(); got[0] != "a" {
		t.Errorf("Classes()[0] = %q after mutating copy, want a", got[0])
	}

	kids := d.Children()
	kids[0] = nil
	if got := d.Children(); got[0] == nil {
		t.Error("Children() slice shared with caller, want copy")
	}
}

func TestClone(t *testing.T) {
	orig := Must("div").
		WithID("root").
		WithClass("card").
		WithChild(Must("p").WithBody("text"))

	cp := orig.Clone()
	cp.SetID("copy")
	cp.AddClass("extra")
	cp.Children()[0].SetBody("changed")
	cp.AddChild(Must("span"))

	if got, _ := orig.Attr("id"); got != "root" {
		t.Errorf("original Attr(id) = %q after clone mutation, want root", got)
	}
	if got := orig.Classes(); len(got) != 1 {
		t.Errorf("original Classes() = %v after clone mutation, want [card]", got)
	}
	if body, _ := orig.Children()[0].Body(); body != "text" {
		t.Errorf("original child Body() = %q after clone mutation, want text", body)
	}
	if len(orig.Children()) != 1 {
		t.Errorf("original Children() len = %d after clone append, want 1", len(orig.Children()))
	}

	var nt *Tag
	if nt.Clone() != nil {
		t.Error("nil Clone() != nil")
	}
}
