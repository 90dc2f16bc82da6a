package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Injury is one row of a player's injury history table.
type Injury struct {
	Type  string
	Start string
	End   string
}

// Injuries reads the first injury history table only; rows with fewer
// cells than the fixed layout are skipped rather than guessed at.
func Injuries(doc *goquery.Document) []Injury {
	var out []Injury
	doc.Find("table.items").First().Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 6 {
			return
		}
		out = append(out, Injury{
			Type:  strings.TrimSpace(cols.Eq(1).Text()),
			Start: strings.TrimSpace(cols.Eq(2).Text()),
			End:   strings.TrimSpace(cols.Eq(3).Text()),
		})
	})
	return out
}
