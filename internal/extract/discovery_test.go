package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standingsPage = `<html><body>
<table class="items"><tbody>
  <tr>
    <td><a href="/fc-example/startseite/verein/11/saison_id/2024" title="FC Example">FC Example</a></td>
    <td><a href="/fc-example/startseite/verein/11/saison_id/2024" title="FC Example">FC Example</a></td>
  </tr>
  <tr>
    <td><a href="/ac-sample/startseite/verein/27/saison_id/2024" title="AC Sample">AC Sample</a></td>
  </tr>
  <tr>
    <td><a href="/ghost/startseite/verein/abc/saison_id/2024" title="Ghost Club">Ghost</a></td>
    <td><a href="/no-title/startseite/verein/99/saison_id/2024">No Title</a></td>
    <td><a href="/somewhere/else/entirely">elsewhere</a></td>
  </tr>
</tbody></table>
<table class="items"><tbody>
  <tr><td><a href="/other/startseite/verein/500/saison_id/2024" title="Second Table FC">x</a></td></tr>
</tbody></table>
</body></html>`

func TestTeamLinks(t *testing.T) {
	got := TeamLinks(parseDoc(t, standingsPage))
	require.Len(t, got, 2)
	assert.Equal(t, TeamLink{ID: "11", Name: "FC Example", Path: "/fc-example/startseite/verein/11/saison_id/2024"}, got[0])
	assert.Equal(t, TeamLink{ID: "27", Name: "AC Sample", Path: "/ac-sample/startseite/verein/27/saison_id/2024"}, got[1])
}

func TestTeamLinksNoTable(t *testing.T) {
	assert.Nil(t, TeamLinks(parseDoc(t, `<html><body><p>empty</p></body></html>`)))
}

func TestPlayerLinks(t *testing.T) {
	doc := parseDoc(t, `<html><body><table class="items"><tbody>
    <tr>
      <td><a href="/jane-doe/profil/spieler/4401">Jane Doe</a></td>
      <td><a href="/jane-doe/profil/spieler/4401">Jane Doe</a></td>
    </tr>
    <tr><td><a href="/jo-roe/profil/spieler/5502">Jo Roe</a></td></tr>
    <tr><td><a href="/jo-roe/leistungsdaten/spieler/5502">stats</a></td></tr>
  </tbody></table></body></html>`)

	got := PlayerLinks(doc)
	require.Len(t, got, 2)
	assert.Equal(t, PlayerLink{ID: "4401", Path: "/jane-doe/profil/spieler/4401"}, got[0])
	assert.Equal(t, PlayerLink{ID: "5502", Path: "/jo-roe/profil/spieler/5502"}, got[1])
}

func TestManagerFromTeamPage(t *testing.T) {
	doc := parseDoc(t, `<html><body><ul>
    <li>Coach: <a href="/other-person/profil/trainer/900">Other Person</a></li>
    <li>Manager: <a href="/pat-lee/profil/trainer/777">Pat Lee</a></li>
  </ul></body></html>`)

	link, ok := ManagerFromTeamPage(doc)
	require.True(t, ok)
	// "Manager:" outranks "Coach:" regardless of page order.
	assert.Equal(t, ManagerLink{ID: "777", Name: "Pat Lee", Path: "/pat-lee/profil/trainer/777"}, link)
}

func TestManagerFromTeamPageMissing(t *testing.T) {
	_, ok := ManagerFromTeamPage(parseDoc(t, `<html><body><p>no staff here</p></body></html>`))
	assert.False(t, ok)
}

func TestManagerFromStaffPage(t *testing.T) {
	doc := parseDoc(t, `<html><body><table><tbody>
    <tr><td>Assistant Manager</td><td><a href="/helper/profil/trainer/111">Helper</a></td></tr>
    <tr><td>Goalkeeper Coach</td><td><a href="/gloves/profil/trainer/222">Gloves</a></td></tr>
    <tr><td>Manager</td><td><a href="/sam-kim/profil/trainer/333">Sam Kim</a></td></tr>
  </tbody></table></body></html>`)

	link, ok := ManagerFromStaffPage(doc)
	require.True(t, ok)
	assert.Equal(t, ManagerLink{ID: "333", Name: "Sam Kim", Path: "/sam-kim/profil/trainer/333"}, link)
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "4401", LastSegment("/jane-doe/profil/spieler/4401"))
	assert.Equal(t, "plain", LastSegment("plain"))
}
