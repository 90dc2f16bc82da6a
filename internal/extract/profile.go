package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Profile holds the raw profile fields of one player page. Values are
// trimmed but not yet row-normalized; the orchestrator applies CleanValue
// and CleanString when emitting rows.
type Profile struct {
	Name        string
	Age         string
	Nationality string
	Height      string
	Foot        string
	Positions   string
	MarketValue string
}

var parenAge = regexp.MustCompile(`\((\d+)\)`)

// labelMatcher is one independent strategy for locating the value that
// belongs to a label string. Strategies are tried in order and the first
// structural hit wins, which tolerates markup variants across site
// sections and eras.
type labelMatcher func(doc *goquery.Document, label string) (string, bool)

var profileMatchers = []labelMatcher{
	matchContainerValue,
	matchSiblingSpan,
}

// ProfileValue looks a field up by an ordered fallback list of candidate
// labels (e.g. "Foot" -> "Main foot" -> "Strong foot") and returns ""
// when no label matches anywhere.
func ProfileValue(doc *goquery.Document, labels ...string) string {
	for _, label := range labels {
		for _, match := range profileMatchers {
			if v, ok := match(doc, label); ok {
				return v
			}
		}
	}
	return ""
}

// matchContainerValue finds the innermost li/tr containing the label and
// reads the highlighted value element inside it.
func matchContainerValue(doc *goquery.Document, label string) (string, bool) {
	container := labelContainer(doc, label)
	if container == nil {
		return "", false
	}
	val := container.Find(".data-header__content, .info-table__content--bold").First()
	if val.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(val.Text()), true
}

// matchSiblingSpan handles the label-span / value-span layout used on
// info tables: the value is a later sibling of the span holding the label.
func matchSiblingSpan(doc *goquery.Document, label string) (string, bool) {
	var out string
	var found bool
	doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), label) {
			return true
		}
		sib := s.NextAllFiltered("span.info-table__content--bold").First()
		if sib.Length() == 0 {
			return true
		}
		out = strings.TrimSpace(sib.Text())
		found = true
		return false
	})
	return out, found
}

// labelContainer returns the innermost li or tr whose text contains the
// label, or nil. Innermost matters for nested tables: an outer tr's text
// includes everything below it.
func labelContainer(doc *goquery.Document, label string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("li, tr").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), label) {
			return true
		}
		nested := s.Find("li, tr").FilterFunction(func(_ int, c *goquery.Selection) bool {
			return strings.Contains(c.Text(), label)
		})
		if nested.Length() > 0 {
			return true
		}
		found = s
		return false
	})
	return found
}

// PlayerProfile extracts the profile field group from a player page.
// Missing elements yield empty fields, never errors.
func PlayerProfile(doc *goquery.Document) Profile {
	p := Profile{
		Name:        headerName(doc),
		Age:         ageInContainer(doc, "Date of birth/Age"),
		Nationality: citizenship(doc),
		Foot:        ProfileValue(doc, "Foot", "Main foot", "Strong foot"),
		Positions:   ProfileValue(doc, "Position"),
		MarketValue: marketValue(doc),
	}
	height := ProfileValue(doc, "Height")
	height = strings.ReplaceAll(height, "m", "")
	p.Height = strings.TrimSpace(strings.ReplaceAll(height, ",", "."))
	return p
}

// ManagerDetails extracts age and nationality from a manager profile page.
func ManagerDetails(doc *goquery.Document) (age, nationality string) {
	return ageInContainer(doc, "Date of birth/Age"), citizenship(doc)
}

func headerName(doc *goquery.Document) string {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return "Unknown"
	}
	clone := h1.Clone()
	clone.Find("span").Remove()
	return strings.Join(strings.Fields(clone.Text()), " ")
}

func ageInContainer(doc *goquery.Document, label string) string {
	container := labelContainer(doc, label)
	if container == nil {
		return ""
	}
	m := parenAge.FindStringSubmatch(container.Text())
	if m == nil {
		return ""
	}
	return m[1]
}

// citizenship reads the flag image title inside the Citizenship container;
// the country name only appears as the image title on some page variants.
func citizenship(doc *goquery.Document) string {
	container := labelContainer(doc, "Citizenship")
	if container == nil {
		return ""
	}
	flag := container.Find("img.flaggenrahmen").First()
	if flag.Length() == 0 {
		return ""
	}
	title, _ := flag.Attr("title")
	return title
}

func marketValue(doc *goquery.Document) string {
	box := doc.Find("a.data-header__market-value-wrapper").First()
	if box.Length() == 0 {
		return ""
	}
	text := strings.Join(strings.Fields(box.Text()), " ")
	if i := strings.Index(text, "Last"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
