// Package el is the element DSL for htmltag.
//
// It provides one constructor per HTML element, each accepting a mix of
// attributes, children, and text:
//
//	card := el.Div(el.Class("card"),
//	    el.H2("Title"),
//	    el.P(el.Class("muted"), "Body text."),
//	    el.A(el.Href("/more"), "Read more"),
//	)
//	fmt.Println(card.HTML())
//
// Constructor arguments are dispatched by type:
//
//   - tag.Attr and []tag.Attr set attributes
//   - *tag.Tag and []*tag.Tag append children
//   - string appends to the tag's body text
//   - nil is ignored, which makes conditional arguments cheap
//
// Anything else is silently dropped. The constructors build on pkg/tag,
// so the trees they return interoperate with hand-built tags, and like
// pkg/tag they escape nothing.
package el
