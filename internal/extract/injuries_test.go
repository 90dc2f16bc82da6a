package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjuries(t *testing.T) {
	doc := parseDoc(t, `<html><body><table class="items"><tbody>
    <tr>
      <td>23/24</td><td>Hamstring injury</td><td>Oct 5, 2023</td>
      <td>Nov 20, 2023</td><td>46 days</td><td>8</td>
    </tr>
    <tr>
      <td>22/23</td><td>Ankle sprain</td><td>Feb 1, 2023</td>
      <td>Mar 1, 2023</td><td>28 days</td><td>4</td>
    </tr>
    <tr><td>too</td><td>short</td><td>row</td></tr>
  </tbody></table></body></html>`)

	got := Injuries(doc)
	require.Len(t, got, 2)
	assert.Equal(t, Injury{Type: "Hamstring injury", Start: "Oct 5, 2023", End: "Nov 20, 2023"}, got[0])
	assert.Equal(t, Injury{Type: "Ankle sprain", Start: "Feb 1, 2023", End: "Mar 1, 2023"}, got[1])
}

func TestInjuriesNoTable(t *testing.T) {
	assert.Empty(t, Injuries(parseDoc(t, `<html><body><p>injury free</p></body></html>`)))
}

func TestInjuriesFirstTableOnly(t *testing.T) {
	doc := parseDoc(t, `<html><body>
  <table class="items"><tbody>
    <tr>
      <td>23/24</td><td>Hamstring injury</td><td>Oct 5, 2023</td>
      <td>Nov 20, 2023</td><td>46 days</td><td>8</td>
    </tr>
  </tbody></table>
  <table class="items"><tbody>
    <tr>
      <td>22/23</td><td>Suspension</td><td>Feb 1, 2023</td>
      <td>Mar 1, 2023</td><td>28 days</td><td>4</td>
    </tr>
  </tbody></table>
</body></html>`)

	got := Injuries(doc)
	require.Len(t, got, 1)
	assert.Equal(t, "Hamstring injury", got[0].Type)
}
