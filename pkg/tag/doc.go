// Package tag provides the core HTML tag tree for htmltag.
//
// A Tag is one HTML element: a name, ordered attributes, an ordered class
// list, optional body text, and child tags. Tags are assembled through
// builder calls and serialized on demand with HTML(); building a fragment
// never touches strings until render time.
//
// # Building
//
// Every operation comes in two forms: an imperative mutator (SetAttr,
// AddClass, SetBody, AddChild) for callers holding a variable, and a fluent
// With* twin that returns the receiver so construction can be chained:
//
//	link := tag.Must("a").
//	    WithHref("https://example.com").
//	    WithClass("external").
//	    WithBody("Example")
//
// # Ownership
//
// Children are exclusively owned by their parent. AddChild transfers
// ownership: after attaching a tag it must not be attached to a second
// parent or mutated through a retained pointer. The API only appends
// newly built subtrees, so a well-behaved caller can never form a cycle.
//
// # Escaping
//
// No escaping is performed on attribute values, class names, or body text.
// Output is the input, verbatim. Callers rendering untrusted data must
// sanitize it first or render through package render with Escape enabled;
// passing raw user input to SetBody or SetAttr is an injection vector.
package tag
