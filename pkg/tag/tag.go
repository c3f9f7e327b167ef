package tag

import (
	"fmt"
	"strings"
)

// Attr is a single HTML attribute. Attributes keep the order in which
// they were first set.
type Attr struct {
	Key   string
	Value string
}

// Tag is one node in an HTML tree. The zero value is not usable; build
// tags with New, Must, or the constructors in package el.
type Tag struct {
	name     string
	attrs    []Attr
	classes  []string
	body     string
	hasBody  bool
	children []*Tag
	void     bool
}

// New returns a tag with the given name. The name is lowercased and must
// start with a letter and contain only letters, digits, and hyphens;
// otherwise New returns ErrEmptyName or ErrInvalidName. Names in the void
// element set (br, img, input, ...) produce a tag that renders without a
// closing tag.
func New(name string) (*Tag, error) {
	name = Normalize(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !IsValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return &Tag{name: name, void: voidNames[name]}, nil
}

// Must is like New but panics on an invalid name. Use it for names known
// at compile time.
func Must(name string) *Tag {
	t, err := New(name)
	if err != nil {
		panic(err)
	}
	return t
}

// NewWithBody returns a tag with its body text and any classes already
// set.
func NewWithBody(name, body string, classes ...string) (*Tag, error) {
	t, err := New(name)
	if err != nil {
		return nil, err
	}
	t.SetBody(body)
	for _, c := range classes {
		t.AddClass(c)
	}
	return t, nil
}

// Name returns the tag name. The name is fixed at construction.
func (t *Tag) Name() string {
	return t.name
}

// Attr returns the value of an explicit attribute and whether it is set.
// The class list is not visible through Attr; use Classes.
func (t *Tag) Attr(key string) (string, bool) {
	for _, a := range t.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the explicit attributes in insertion order.
func (t *Tag) Attrs() []Attr {
	out := make([]Attr, len(t.attrs))
	copy(out, t.attrs)
	return out
}

// Classes returns a copy of the class list in insertion order.
func (t *Tag) Classes() []string {
	out := make([]string, len(t.classes))
	copy(out, t.classes)
	return out
}

// Body returns the body text and whether a body has been set. An empty
// body set explicitly still reports true.
func (t *Tag) Body() (string, bool) {
	return t.body, t.hasBody
}

// Children returns a copy of the child list in insertion order. The
// children themselves are shared, not cloned.
func (t *Tag) Children() []*Tag {
	out := make([]*Tag, len(t.children))
	copy(out, t.children)
	return out
}

// Void reports whether the tag renders as a lone opening tag.
func (t *Tag) Void() bool {
	return t.void
}

// SetAttr sets an attribute. A repeated key overwrites the value in place
// and keeps the key's original position. Setting "class" is routed to
// AddClass so the rendered class attribute stays single and deduplicated.
// An empty key is ignored. The value is stored verbatim.
func (t *Tag) SetAttr(key, value string) {
	if key == "" {
		return
	}
	if key == "class" {
		t.AddClass(value)
		return
	}
	for i := range t.attrs {
		if t.attrs[i].Key == key {
			t.attrs[i].Value = value
			return
		}
	}
	t.attrs = append(t.attrs, Attr{Key: key, Value: value})
}

// AddClass appends each whitespace-separated class token in name that is
// not already present. Duplicates and blank input are ignored, so the
// class list stays unique and ordered by first addition.
func (t *Tag) AddClass(name string) {
	for _, c := range strings.Fields(name) {
		if !t.hasClass(c) {
			t.classes = append(t.classes, c)
		}
	}
}

func (t *Tag) hasClass(name string) bool {
	for _, c := range t.classes {
		if c == name {
			return true
		}
	}
	return false
}

// SetBody replaces the tag's body text. The text is stored verbatim and
// rendered before any children.
func (t *Tag) SetBody(text string) {
	t.body = text
	t.hasBody = true
}

// AddChild appends a child. The parent takes ownership: the child must
// not be attached elsewhere or mutated afterwards through a retained
// pointer. A nil child is ignored.
func (t *Tag) AddChild(child *Tag) {
	if child == nil {
		return
	}
	t.children = append(t.children, child)
}

// SetVoid overrides whether the tag renders without a closing tag. New
// already flags the standard void elements; SetVoid is for custom names.
func (t *Tag) SetVoid(v bool) {
	t.void = v
}

// SetID sets the id attribute.
func (t *Tag) SetID(id string) { t.SetAttr("id", id) }

// SetHref sets the href attribute.
func (t *Tag) SetHref(href string) { t.SetAttr("href", href) }

// SetStyle sets the style attribute.
func (t *Tag) SetStyle(style string) { t.SetAttr("style", style) }

// SetName sets the name attribute, as used by form controls. The tag
// name itself is fixed at construction.
func (t *Tag) SetName(name string) { t.SetAttr("name", name) }

// SetType sets the type attribute.
func (t *Tag) SetType(typ string) { t.SetAttr("type", typ) }

// SetSrc sets the src attribute.
func (t *Tag) SetSrc(src string) { t.SetAttr("src", src) }

// WithAttr sets an attribute and returns the tag for chaining.
func (t *Tag) WithAttr(key, value string) *Tag {
	t.SetAttr(key, value)
	return t
}

// WithClass adds class tokens and returns the tag for chaining.
func (t *Tag) WithClass(name string) *Tag {
	t.AddClass(name)
	return t
}

// WithBody sets the body text and returns the tag for chaining.
func (t *Tag) WithBody(text string) *Tag {
	t.SetBody(text)
	return t
}

// WithChild appends a child and returns the tag for chaining.
func (t *Tag) WithChild(child *Tag) *Tag {
	t.AddChild(child)
	return t
}

// WithChildren appends children in order and returns the tag for
// chaining.
func (t *Tag) WithChildren(children ...*Tag) *Tag {
	for _, c := range children {
		t.AddChild(c)
	}
	return t
}

// WithID sets the id attribute and returns the tag for chaining.
func (t *Tag) WithID(id string) *Tag {
	t.SetID(id)
	return t
}

// WithHref sets the href attribute and returns the tag for chaining.
func (t *Tag) WithHref(href string) *Tag {
	t.SetHref(href)
	return t
}

// WithStyle sets the style attribute and returns the tag for chaining.
func (t *Tag) WithStyle(style string) *Tag {
	t.SetStyle(style)
	return t
}

// WithName sets the name attribute and returns the tag for chaining.
func (t *Tag) WithName(name string) *Tag {
	t.SetName(name)
	return t
}

// WithType sets the type attribute and returns the tag for chaining.
func (t *Tag) WithType(typ string) *Tag {
	t.SetType(typ)
	return t
}

// WithSrc sets the src attribute and returns the tag for chaining.
func (t *Tag) WithSrc(src string) *Tag {
	t.SetSrc(src)
	return t
}

// AsVoid marks the tag void and returns it for chaining.
func (t *Tag) AsVoid() *Tag {
	t.SetVoid(true)
	return t
}

// Clone returns a deep copy of the tag and all of its children. The copy
// shares nothing with the original, so either tree can be mutated freely.
func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	c := &Tag{
		name:    t.name,
		body:    t.body,
		hasBody: t.hasBody,
		void:    t.void,
	}
	if len(t.attrs) > 0 {
		c.attrs = make([]Attr, len(t.attrs))
		copy(c.attrs, t.attrs)
	}
	if len(t.classes) > 0 {
		c.classes = make([]string, len(t.classes))
		copy(c.classes, t.classes)
	}
	if len(t.children) > 0 {
		c.children = make([]*Tag, len(t.children))
		for i, child := range t.children {
			c.children[i] = child.Clone()
		}
	}
	return c
}
