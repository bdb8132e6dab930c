package seo

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes a string for an XML text node or attribute value.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
