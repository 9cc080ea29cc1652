package collector

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultTableSelector selects the code table on the wiki page
const DefaultTableSelector = "table.wikitable"

// ExtractRows returns the rows of the first table matching selector.
// A document without such a table yields no rows.
func ExtractRows(doc *goquery.Document, selector string) []Row {
	if selector == "" {
		selector = DefaultTableSelector
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil
	}

	rows := []Row{}
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}
		rows = append(rows, Row{
			Code:   cellText(cells.Eq(0)),
			Reward: cellText(cells.Eq(1)),
			Expiry: cellText(cells.Eq(2)),
		})
	})

	return rows
}

// cellText joins the trimmed text nodes under s with single spaces.
// An empty selection yields "".
func cellText(s *goquery.Selection) string {
	var parts []string
	for _, n := range s.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := normalizeSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// normalizeSpace collapses runs of Unicode whitespace, &nbsp; included,
// into single ASCII spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
