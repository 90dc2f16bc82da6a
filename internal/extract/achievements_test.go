package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const honoursPage = `<html><body>
<div class="box">
  <h2>Champions League Titles</h2>
  <table>
    <tr><td>1x</td><td>winner</td><td>23/24</td></tr>
    <tr><td>1x</td><td>winner</td><td>2022</td></tr>
  </table>
</div>
<div class="box">
  <h2>All titles</h2>
  <table><tr><td>5x</td><td>various</td><td>2020</td></tr></table>
</div>
<div class="box">
  <h2>Relegated Titles</h2>
  <table><tr><td>1x</td><td>down</td><td>2019</td></tr></table>
</div>
<div class="box">
  <h2>Cup Titles</h2>
  <table><tr><td>no season listed</td></tr></table>
</div>
</body></html>`

func TestAchievements(t *testing.T) {
	got := Achievements(parseDoc(t, honoursPage))

	require.Len(t, got, 2)
	assert.Equal(t, Achievement{Title: "Champions League", Year: "23/24"}, got[0])
	assert.Equal(t, Achievement{Title: "Champions League", Year: "2022"}, got[1])
}

func TestAchievementYearFromThirdColumn(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="box">
    <h2>League Titles</h2>
    <table><tr><td>winner</td><td>club</td><td>21/22</td></tr></table>
  </div></body></html>`)

	got := Achievements(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "21/22", got[0].Year)
}

func TestAchievementsEmptyPage(t *testing.T) {
	assert.Empty(t, Achievements(parseDoc(t, `<html><body></body></html>`)))
}

func TestAchievementID(t *testing.T) {
	assert.Equal(t, "28003_LaLiga_22/23", AchievementID("28003", "La Liga", "22/23"))
}
