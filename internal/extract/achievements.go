package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Achievement is one title/season pair from an achievements page.
type Achievement struct {
	Title string
	Year  string
}

var (
	yearAnywhere = regexp.MustCompile(`\d{2}/\d{2}|\d{4}`)
	yearAnchored = regexp.MustCompile(`^(?:\d{2}/\d{2}|\d{4})`)
)

// Achievements walks the achievement boxes of a player's honours page.
// Boxes without a parsable season and the aggregate/relegation boxes are
// skipped; rows never fail.
func Achievements(doc *goquery.Document) []Achievement {
	var out []Achievement
	doc.Find("div.box").Each(func(_ int, box *goquery.Selection) {
		header := box.Find("h2").First()
		if header.Length() == 0 {
			return
		}
		title := strings.TrimSpace(strings.ReplaceAll(header.Text(), "Titles", ""))
		if strings.Contains(strings.ToLower(title), "relegat") || strings.Contains(title, "All titles") {
			return
		}
		box.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cols := row.Find("td")
			if cols.Length() < 1 {
				return
			}
			text := strings.Join(strings.Fields(row.Text()), " ")
			year := yearAnywhere.FindString(text)
			if year == "" && cols.Length() > 2 {
				third := strings.TrimSpace(cols.Eq(2).Text())
				if yearAnchored.MatchString(third) {
					year = third
				}
			}
			if year == "" {
				return
			}
			out = append(out, Achievement{Title: title, Year: year})
		})
	})
	return out
}

// AchievementID derives the deterministic achievement identifier from the
// owning player id, guaranteeing natural uniqueness without a sequence.
func AchievementID(playerID, title, year string) string {
	return strings.ReplaceAll(playerID+"_"+title+"_"+year, " ", "")
}
