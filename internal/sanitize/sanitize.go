// Package sanitize escapes user input before it is stored so that it renders
// as text, never as markup.
package sanitize

import (
	"html"
	"strconv"
)

func String(s string) string {
	return html.EscapeString(s)
}

// Price renders a price the way it is stored: shortest decimal form, escaped.
func Price(p float64) string {
	return String(strconv.FormatFloat(p, 'f', -1, 64))
}
