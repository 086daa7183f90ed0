package lingo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// IgnoredTags contains HTML tags whose content is never a translation key.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// KeysFromHTML extracts translatable text nodes from an HTML document, in
// document order and deduplicated. The result is meant to feed
// Coordinator.Warm so a page's strings are filled before they are looked up.
//
// Content inside IgnoredTags and elements carrying a data-no-translate
// attribute is skipped. Unparseable input yields no keys.
func KeysFromHTML(content string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var keys []string
	seen := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if IgnoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" && !seen[text] {
				seen[text] = true
				keys = append(keys, text)
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}

	return keys
}
