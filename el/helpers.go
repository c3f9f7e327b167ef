package el

import "github.com/htmltag-dev/htmltag/pkg/tag"

// If returns the tag if condition is true, nil otherwise. Constructors
// skip nil arguments, so the result can be passed straight in.
func If(condition bool, t *tag.Tag) *tag.Tag {
	if condition {
		return t
	}
	return nil
}

// IfElse returns the first tag if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *tag.Tag) *tag.Tag {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation. The function is only called
// if condition is true.
func When(condition bool, fn func() *tag.Tag) *tag.Tag {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If. Returns the tag if condition is false.
func Unless(condition bool, t *tag.Tag) *tag.Tag {
	if !condition {
		return t
	}
	return nil
}

// Range maps a slice to tags. Nil results are dropped.
func Range[T any](items []T, fn func(item T, index int) *tag.Tag) []*tag.Tag {
	result := make([]*tag.Tag, 0, len(items))
	for i, item := range items {
		t := fn(item, i)
		if t != nil {
			result = append(result, t)
		}
	}
	return result
}

// Repeat creates n tags using the given function. Nil results are
// dropped.
func Repeat(n int, fn func(i int) *tag.Tag) []*tag.Tag {
	if n <= 0 {
		return nil
	}
	result := make([]*tag.Tag, 0, n)
	for i := 0; i < n; i++ {
		t := fn(i)
		if t != nil {
			result = append(result, t)
		}
	}
	return result
}
