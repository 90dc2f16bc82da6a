package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Role classifies a player for positional stats mapping. The season-totals
// footer row is a fixed table with no labels and its column offsets differ
// between goalkeepers and outfield players, so the layout must be chosen
// before any cell is read.
type Role int

// Player roles.
const (
	Outfield Role = iota
	Goalkeeper
)

// ClassifyRole decides the role from the already-extracted position text.
func ClassifyRole(position string) Role {
	if strings.Contains(position, "Goalkeeper") || strings.Contains(strings.ToLower(position), "keeper") {
		return Goalkeeper
	}
	return Outfield
}

// statsLayout maps logical stat fields to column offsets in the totals
// row. An offset of -1 means the column does not exist for the role and
// the field is fixed at "0".
type statsLayout struct {
	matches       int
	goals         int
	assists       int
	yellow        int
	secondYellow  int
	red           int
	goalsConceded int
	cleanSheets   int
}

var (
	// outfieldLayout: matches | goals | assists | ... | yellow | 2nd yellow | red.
	outfieldLayout = statsLayout{
		matches: 2, goals: 3, assists: 4,
		yellow: 8, secondYellow: 9, red: 10,
		goalsConceded: -1, cleanSheets: -1,
	}
	// goalkeeperLayout: matches | ... | cards | goals conceded | clean sheets.
	goalkeeperLayout = statsLayout{
		matches: 2, goals: -1, assists: -1,
		yellow: 7, secondYellow: 8, red: 9,
		goalsConceded: 10, cleanSheets: 11,
	}
)

func layoutFor(role Role) statsLayout {
	if role == Goalkeeper {
		return goalkeeperLayout
	}
	return outfieldLayout
}

// SeasonTotals holds the normalized career-totals row of one player.
// Every field is already CleanValue-normalized.
type SeasonTotals struct {
	Matches       string
	Goals         string
	Assists       string
	Yellow        string
	SecondYellow  string
	Red           string
	GoalsConceded string
	CleanSheets   string
}

// Totals reads the season-totals footer row through the layout selected
// by role. The second return is false when the page has no totals row at
// all; short rows degrade per-field to "0".
func Totals(doc *goquery.Document, role Role) (SeasonTotals, bool) {
	row := doc.Find("tfoot tr").First()
	if row.Length() == 0 {
		return SeasonTotals{}, false
	}
	var cells []string
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(td.Text()))
	})
	layout := layoutFor(role)
	return SeasonTotals{
		Matches:       cellValue(cells, layout.matches),
		Goals:         cellValue(cells, layout.goals),
		Assists:       cellValue(cells, layout.assists),
		Yellow:        cellValue(cells, layout.yellow),
		SecondYellow:  cellValue(cells, layout.secondYellow),
		Red:           cellValue(cells, layout.red),
		GoalsConceded: cellValue(cells, layout.goalsConceded),
		CleanSheets:   cellValue(cells, layout.cleanSheets),
	}, true
}

func cellValue(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return "0"
	}
	return CleanValue(cells[idx])
}
