package render

import "strings"

// escapeTo writes s with HTML entities substituted for special
// characters. In attribute position it also escapes whitespace
// characters that could break attribute parsing.
func escapeTo(w *errWriter, s string, attr bool) {
	start := 0
	for i, r := range s {
		var ent string
		switch r {
		case '&':
			ent = "&amp;"
		case '<':
			ent = "&lt;"
		case '>':
			ent = "&gt;"
		case '"':
			ent = "&quot;"
		case '\'':
			ent = "&#39;"
		case '\n':
			if attr {
				ent = "&#10;"
			}
		case '\r':
			if attr {
				ent = "&#13;"
			}
		case '\t':
			if attr {
				ent = "&#9;"
			}
		}
		if ent == "" {
			continue
		}
		w.writeString(s[start:i])
		w.writeString(ent)
		start = i + 1
	}
	w.writeString(s[start:])
}

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	escapeTo(&errWriter{w: &sb}, s, false)
	return sb.String()
}

// escapeAttr escapes text for inclusion in an HTML attribute value.
func escapeAttr(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	escapeTo(&errWriter{w: &sb}, s, true)
	return sb.String()
}
