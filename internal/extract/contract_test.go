package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractFromLabels(t *testing.T) {
	doc := parseDoc(t, `<html><body><table>
    <tr><td>Joined:</td><td class="info-table__content--bold">Jul 1, 2023</td></tr>
    <tr><td>Contract expires:</td><td class="info-table__content--bold">Jun 30, 2027</td></tr>
  </table></body></html>`)

	terms := Contract(doc)
	assert.Equal(t, "Jul 1, 2023", terms.Joined)
	assert.Equal(t, "Jun 30, 2027", terms.Expires)
	assert.False(t, terms.Empty())
}

func TestContractLabelVariants(t *testing.T) {
	doc := parseDoc(t, `<html><body><table>
    <tr><td>In squad since:</td><td class="info-table__content--bold">01/07/2022</td></tr>
    <tr><td>Contract until:</td><td class="info-table__content--bold">30.06.2026</td></tr>
  </table></body></html>`)

	terms := Contract(doc)
	assert.Equal(t, "01/07/2022", terms.Joined)
	assert.Equal(t, "30.06.2026", terms.Expires)
}

func TestContractRegexFallback(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="info-table">
    Joined: the club on 15.08.2021 after a free transfer.
    Contract expires: officially 30.06.2025 per the club site.
  </div></body></html>`)

	terms := Contract(doc)
	assert.Equal(t, "15.08.2021", terms.Joined)
	assert.Equal(t, "30.06.2025", terms.Expires)
}

func TestContractMissingEverything(t *testing.T) {
	terms := Contract(parseDoc(t, `<html><body><p>no contract data</p></body></html>`))
	assert.True(t, terms.Empty())
}
