package tag

import "strings"

// voidNames are the HTML elements with no closing tag.
var voidNames = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// nameRanks orders the common element names from least to most prominent.
// Unknown names rank between th and img and compare among themselves
// lexically.
var nameRanks = map[string]int{
	"p":     0,
	"span":  1,
	"a":     2,
	"table": 3,
	"tr":    4,
	"td":    5,
	"th":    6,
	"img":   8,
	"h6":    9,
	"h5":    10,
	"h4":    11,
	"h3":    12,
	"h2":    13,
	"h1":    14,
	"div":   15,
}

const customRank = 7

// Normalize lowercases a tag name and trims surrounding space. It does not
// validate; pair with IsValidName when the input is untrusted.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsValidName reports whether name is acceptable as a tag name: it must
// start with an ASCII letter and contain only ASCII letters, digits, and
// hyphens. Hyphens cover custom elements like "my-widget".
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		case c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsVoid reports whether name is a void element such as br or img. Void
// elements render as a lone opening tag.
func IsVoid(name string) bool {
	return voidNames[Normalize(name)]
}

// Rank returns the ordering weight of a normalized tag name.
func Rank(name string) int {
	if r, ok := nameRanks[name]; ok {
		return r
	}
	return customRank
}

// Compare orders two tag names by prominence, least first, and breaks
// ties between custom names lexically. The result is -1, 0, or 1 in the
// manner of strings.Compare, giving a deterministic total order for
// sorting mixed tag sets.
func Compare(a, b string) int {
	a, b = Normalize(a), Normalize(b)
	ra, rb := Rank(a), Rank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	if ra == customRank {
		return strings.Compare(a, b)
	}
	return 0
}
