package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const playerPage = `<html><body>
<h1><span>#7</span> Vinicius Junior</h1>
<a class="data-header__market-value-wrapper">€150.00m Last update: Jun 1, 2025</a>
<ul>
  <li>Date of birth/Age: Jul 12, 2000 (25)</li>
  <li>Height: <span class="data-header__content">1,76 m</span></li>
</ul>
<div class="info-table">
  <table>
    <tr><td>Citizenship:</td><td><img class="flaggenrahmen" title="Brazil"/></td></tr>
    <tr><td>Main foot:</td><td class="info-table__content--bold">Left</td></tr>
    <tr><td>Position:</td><td class="info-table__content--bold">Left Winger</td></tr>
    <tr><td>Joined:</td><td class="info-table__content--bold">Jul 12, 2018</td></tr>
    <tr><td>Contract expires:</td><td class="info-table__content--bold">Jun 30, 2027</td></tr>
  </table>
</div>
</body></html>`

func TestPlayerProfile(t *testing.T) {
	p := PlayerProfile(parseDoc(t, playerPage))

	assert.Equal(t, "Vinicius Junior", p.Name)
	assert.Equal(t, "25", p.Age)
	assert.Equal(t, "Brazil", p.Nationality)
	assert.Equal(t, "1.76", p.Height)
	assert.Equal(t, "Left", p.Foot)
	assert.Equal(t, "Left Winger", p.Positions)
	assert.Equal(t, "€150.00m", p.MarketValue)
}

func TestPlayerProfileMissingEverything(t *testing.T) {
	p := PlayerProfile(parseDoc(t, `<html><body><div>nothing here</div></body></html>`))

	assert.Equal(t, "Unknown", p.Name)
	assert.Empty(t, p.Age)
	assert.Empty(t, p.Nationality)
	assert.Empty(t, p.MarketValue)
}

func TestProfileValueLabelFallbackOrder(t *testing.T) {
	doc := parseDoc(t, `<html><body><table>
    <tr><td>Strong foot:</td><td class="info-table__content--bold">Right</td></tr>
  </table></body></html>`)

	assert.Equal(t, "Right", ProfileValue(doc, "Foot", "Main foot", "Strong foot"))
	assert.Empty(t, ProfileValue(doc, "Weight"))
}

func TestProfileValueSiblingSpanMatcher(t *testing.T) {
	doc := parseDoc(t, `<html><body><div>
    <span>Contract expires:</span>
    <span class="info-table__content--bold">Jun 30, 2026</span>
  </div></body></html>`)

	assert.Equal(t, "Jun 30, 2026", ProfileValue(doc, "Contract expires"))
}

func TestProfileValuePicksInnermostContainer(t *testing.T) {
	// The label sits inside a tr nested within an outer tr whose text
	// also contains it; the value must come from the inner container.
	doc := parseDoc(t, `<html><body><table><tr><td>
    <span class="data-header__content">outer noise</span>
    <table><tr><td>Height:</td><td class="data-header__content">1,89 m</td></tr></table>
  </td></tr></table></body></html>`)

	assert.Equal(t, "1,89 m", ProfileValue(doc, "Height"))
}

func TestManagerDetails(t *testing.T) {
	doc := parseDoc(t, `<html><body><ul>
    <li>Date of birth/Age: Jan 9, 1987 (38)</li>
    <li>Citizenship: <img class="flaggenrahmen" title="Spain"/></li>
  </ul></body></html>`)

	age, nationality := ManagerDetails(doc)
	assert.Equal(t, "38", age)
	assert.Equal(t, "Spain", nationality)
}
