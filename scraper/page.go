package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/encrypter15/Armitage-Market-Mirror/services"
)

// Field accessors over a parsed page. A selector that matches nothing yields
// an empty string, never an error, so extractors can treat every field as
// optional and decide per candidate what absence means.

// NodeText returns the cleaned text of the first node under sel matching
// selector, or "" when there is no such node.
func NodeText(sel *goquery.Selection, selector string) string {
	return services.CleanText(sel.Find(selector).First().Text())
}

// NodeAttr returns the named attribute of the first node under sel matching
// selector, or "" when the node or attribute is absent.
func NodeAttr(sel *goquery.Selection, selector, attr string) string {
	val, ok := sel.Find(selector).First().Attr(attr)
	if !ok {
		return ""
	}
	return strings.TrimSpace(val)
}
