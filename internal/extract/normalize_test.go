package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanValue(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain number", "34", "34"},
		{"minutes marker stripped", "2.588'", "2588"},
		{"thousands separator stripped", "1.234", "1234"},
		{"dash placeholder", "-", "0"},
		{"empty", "", "0"},
		{"none placeholder", "None", "0"},
		{"whitespace only", "   ", "0"},
		{"slash ratio preserved", "3/1/0", "3/1/0"},
		{"currency text", "€150.00m", "0"},
		{"date text", "Jun 30, 2025", "0"},
		{"negative", "-4", "-4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanValue(tc.in))
		})
	}
}

// Every possible output is non-empty and either digits (with an optional
// minus) or a slash-ratio; malformed input must coerce, never propagate.
func TestCleanValueAlwaysSafe(t *testing.T) {
	inputs := []string{
		"", " ", "-", "None", "abc", "12a", "€", "1.2.3'", "10/2", "??", "\t42\n", "--",
	}
	for _, in := range inputs {
		out := CleanValue(in)
		require.NotEmpty(t, out, "input %q", in)
		if out == "0" {
			continue
		}
		stripped := ""
		for _, r := range out {
			if r != '-' && r != '/' {
				stripped += string(r)
			}
		}
		for _, r := range stripped {
			require.True(t, r >= '0' && r <= '9', "input %q produced %q", in, out)
		}
	}
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, `"Harry Kane"`, CleanString("  Harry Kane "))
	assert.Equal(t, `"Harry Kane"`, CleanString("#9 Harry Kane"))
	assert.Equal(t, `"El ""Loco"" Abreu"`, CleanString(`El "Loco" Abreu`))
	assert.Equal(t, `""`, CleanString(""))
}
