package el

import "github.com/htmltag-dev/htmltag/pkg/tag"

// Attr is re-exported so DSL call sites need only this package.
type Attr = tag.Attr

// newTag builds a tag for a catalog name and applies the arguments.
// Arguments can be: nil, Attr, []Attr, *tag.Tag, []*tag.Tag, string.
func newTag(name string, args []any) *tag.Tag {
	t := tag.Must(name)
	apply(t, args)
	return t
}

func apply(t *tag.Tag, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignored, so callers can pass conditional results.
			continue

		case Attr:
			t.SetAttr(v.Key, v.Value)

		case []Attr:
			for _, a := range v {
				t.SetAttr(a.Key, a.Value)
			}

		case *tag.Tag:
			t.AddChild(v)

		case []*tag.Tag:
			for _, child := range v {
				t.AddChild(child)
			}

		case string:
			if body, ok := t.Body(); ok {
				t.SetBody(body + v)
			} else {
				t.SetBody(v)
			}
		}
	}
}

// Custom creates an element with a custom tag name. The name goes
// through the same validation as tag.New; Custom panics on an invalid
// name, so use tag.New directly when the name is runtime input.
func Custom(name string, args ...any) *tag.Tag {
	t := tag.Must(name)
	apply(t, args)
	return t
}
