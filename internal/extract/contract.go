package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ContractTerms are the current-contract fields of one player profile.
type ContractTerms struct {
	Joined  string
	Expires string
}

const datePattern = `(?:\d{2}[/.]\d{2}[/.]\d{4}|\w{3} \d{1,2}, \d{4})`

var (
	joinedFallback  = regexp.MustCompile(`Joined[:\s]+.*?(` + datePattern + `)`)
	expiresFallback = regexp.MustCompile(`Contract expires[:\s]+.*?(` + datePattern + `)`)
)

// Contract extracts joined/expiry dates via label lookup, falling back to
// a date-pattern scan over the info-table text for page variants that
// place the dates outside the labeled rows.
func Contract(doc *goquery.Document) ContractTerms {
	terms := ContractTerms{
		Joined:  ProfileValue(doc, "Joined", "In squad since"),
		Expires: ProfileValue(doc, "Contract expires", "Contract until"),
	}
	if terms.Joined != "" && terms.Expires != "" {
		return terms
	}
	sidebar := doc.Find("div.info-table").First()
	if sidebar.Length() == 0 {
		return terms
	}
	text := strings.Join(strings.Fields(sidebar.Text()), " ")
	if terms.Expires == "" {
		if m := expiresFallback.FindStringSubmatch(text); m != nil {
			terms.Expires = m[1]
		}
	}
	if terms.Joined == "" {
		if m := joinedFallback.FindStringSubmatch(text); m != nil {
			terms.Joined = m[1]
		}
	}
	return terms
}

// Empty reports whether no contract information was found at all; empty
// terms produce no contract row.
func (c ContractTerms) Empty() bool {
	return c.Joined == "" && c.Expires == ""
}
