package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TeamLink is a team discovered on a league standings page.
type TeamLink struct {
	ID   string
	Name string
	Path string
}

// PlayerLink is a player profile link discovered on a squad page.
type PlayerLink struct {
	ID   string
	Path string
}

// ManagerLink is a manager profile link found on a team or staff page.
type ManagerLink struct {
	ID   string
	Name string
	Path string
}

const (
	teamHrefMarker    = "/startseite/verein/"
	playerHrefMarker  = "/profil/spieler/"
	managerHrefMarker = "/profil/trainer/"
)

// TeamLinks scans the standings table for club links, de-duplicated by id
// in page order. The team id is the third-from-last path segment and must
// be numeric; the display name comes from the link title.
func TeamLinks(doc *goquery.Document) []TeamLink {
	table := doc.Find("table.items").First()
	if table.Length() == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var out []TeamLink
	table.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.Contains(href, teamHrefMarker) {
			return
		}
		segments := strings.Split(href, "/")
		if len(segments) < 3 {
			return
		}
		id := segments[len(segments)-3]
		name, _ := a.Attr("title")
		if !isDigits(id) || name == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, TeamLink{ID: id, Name: name, Path: href})
	})
	return out
}

// PlayerLinks scans the squad table for profile links, de-duplicated by
// href in page order.
func PlayerLinks(doc *goquery.Document) []PlayerLink {
	table := doc.Find("table.items").First()
	if table.Length() == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var out []PlayerLink
	table.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.Contains(href, playerHrefMarker) {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		out = append(out, PlayerLink{ID: LastSegment(href), Path: href})
	})
	return out
}

// managerLabels are tried in priority order on the team's main page.
var managerLabels = []string{"Manager:", "Trainer:", "Head Coach:", "Coach:"}

// ManagerFromTeamPage locates the manager link via a prioritized label
// search on the team's main page.
func ManagerFromTeamPage(doc *goquery.Document) (ManagerLink, bool) {
	for _, label := range managerLabels {
		container := labelContainer(doc, label)
		if container == nil {
			continue
		}
		if link, ok := managerAnchor(container); ok {
			return link, true
		}
	}
	return ManagerLink{}, false
}

// ManagerFromStaffPage falls back to the staff listing, picking the first
// head-coach row that is not an assistant or specialist role.
func ManagerFromStaffPage(doc *goquery.Document) (ManagerLink, bool) {
	var out ManagerLink
	var found bool
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		text := row.Text()
		if !strings.Contains(text, "Manager") && !strings.Contains(text, "Head Coach") &&
			!strings.Contains(text, "Trainer") {
			return true
		}
		if strings.Contains(text, "Assistant") || strings.Contains(text, "Goalkeeper") ||
			strings.Contains(text, "Athletic") {
			return true
		}
		link, ok := managerAnchor(row)
		if !ok {
			return true
		}
		out, found = link, true
		return false
	})
	return out, found
}

func managerAnchor(s *goquery.Selection) (ManagerLink, bool) {
	var out ManagerLink
	var found bool
	s.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if !strings.Contains(href, managerHrefMarker) {
			return true
		}
		out = ManagerLink{
			ID:   LastSegment(href),
			Name: strings.TrimSpace(a.Text()),
			Path: href,
		}
		found = true
		return false
	})
	return out, found
}

// LastSegment returns the final path segment of a source URL path; entity
// ids live there for players, managers, and competitions.
func LastSegment(path string) string {
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}
