package desktop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	desktop "github.com/xdgkit/desktop-go"
)

func loc(token string) desktop.Locale {
	return desktop.ParseLocale(token)
}

func TestLocalizedGet(t *testing.T) {
	t.Parallel()

	name := desktop.NewLocalizedString("Default")
	name.SetLocalized(loc("en"), "English")
	name.SetLocalized(loc("en_US"), "American English")
	name.SetLocalized(loc("fr"), "Français")
	name.SetLocalized(loc("sr"), "Српски")
	name.SetLocalized(loc("sr@Latn"), "Srpski")
	name.SetLocalized(loc("sr_RS"), "Српски (Србија)")

	cases := []struct {
		query string
		want  string
	}{
		{"en_US", "American English"},   // exact
		{"en_GB", "English"},            // country dropped, bare language
		{"de", "Default"},               // no match at all
		{"fr_CA", "Français"},           // bare language
		{"sr_RS@Latn", "Srpski"},        // country dropped, modifier kept
		{"sr_RS", "Српски (Србија)"},    // exact
		{"sr@Ijekavian", "Српски"},      // modifier dropped
		{"en_US.ISO-8859-1", "English"}, // mismatched encoding falls through to bare language
		{"en", "English"},               // exact bare language
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, name.Get(loc(tc.query)))
		})
	}
}

func TestLocalizedGetEncodingNeverStripped(t *testing.T) {
	t.Parallel()

	var v desktop.LocalizedString
	v.Default = "default"
	v.SetLocalized(loc("en_US.UTF-8"), "utf8 variant")

	// The stored key includes its encoding, so only the exact token hits it.
	assert.Equal(t, "utf8 variant", v.Get(loc("en_US.UTF-8")))
	assert.Equal(t, "default", v.Get(loc("en_US")))
	assert.Equal(t, "default", v.Get(loc("en")))
}

func TestLocalizedList(t *testing.T) {
	t.Parallel()

	var kw desktop.LocalizedList
	kw.Default = []string{"edit", "text"}
	kw.SetLocalized(loc("de"), []string{"bearbeiten"})

	assert.Equal(t, []string{"bearbeiten"}, kw.Get(loc("de_AT")))
	assert.Equal(t, []string{"edit", "text"}, kw.Get(loc("ja")))
}

func TestLocalizedInsertionOrder(t *testing.T) {
	t.Parallel()

	var v desktop.LocalizedString
	v.SetLocalized(loc("fr"), "un")
	v.SetLocalized(loc("de"), "eins")
	v.SetLocalized(loc("es"), "uno")

	assert.Equal(t, []desktop.Locale{loc("fr"), loc("de"), loc("es")}, v.Locales())

	// Overwriting keeps the original position.
	v.SetLocalized(loc("de"), "zwei")
	assert.Equal(t, []desktop.Locale{loc("fr"), loc("de"), loc("es")}, v.Locales())

	got, ok := v.Lookup(loc("de"))
	assert.True(t, ok)
	assert.Equal(t, "zwei", got)
}
