package desktop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	desktop "github.com/xdgkit/desktop-go"
)

func TestParseLocale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		token string
		want  desktop.Locale
	}{
		{"en", desktop.Locale{Lang: "en"}},
		{"en_US", desktop.Locale{Lang: "en", Country: "US"}},
		{"en_US.UTF-8", desktop.Locale{Lang: "en", Country: "US", Encoding: "UTF-8"}},
		{"sr_YU@Latn", desktop.Locale{Lang: "sr", Country: "YU", Modifier: "Latn"}},
		{"en_US.UTF-8@euro", desktop.Locale{Lang: "en", Country: "US", Encoding: "UTF-8", Modifier: "euro"}},
		{"ca@valencia", desktop.Locale{Lang: "ca", Modifier: "valencia"}},
		{"uz_UZ.UTF-8@cyrillic", desktop.Locale{Lang: "uz", Country: "UZ", Encoding: "UTF-8", Modifier: "cyrillic"}},
		{"", desktop.Locale{}},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, desktop.ParseLocale(tc.token))
		})
	}
}

func TestLocaleString(t *testing.T) {
	t.Parallel()

	// String is the inverse of ParseLocale for well-formed tokens.
	for _, token := range []string{"en", "en_US", "en_US.UTF-8", "sr_YU@Latn", "en_US.UTF-8@euro"} {
		assert.Equal(t, token, desktop.ParseLocale(token).String())
	}

	loc := desktop.Locale{Lang: "sr", Country: "RS", Modifier: "Latn"}
	assert.Equal(t, "sr_RS@Latn", loc.String())
}

func TestLocaleFromTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		want desktop.Locale
	}{
		{"en", desktop.Locale{Lang: "en"}},
		{"en-US", desktop.Locale{Lang: "en", Country: "US"}},
		{"sr-Latn-RS", desktop.Locale{Lang: "sr", Country: "RS", Modifier: "Latn"}},
		{"fr", desktop.Locale{Lang: "fr"}},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, desktop.LocaleFromTag(language.MustParse(tc.tag)))
		})
	}
}

func TestCurrentLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	assert.Equal(t, desktop.Locale{Lang: "en"}, desktop.CurrentLocale())

	t.Setenv("LANG", "de_DE.UTF-8")
	assert.Equal(t, desktop.Locale{Lang: "de", Country: "DE", Encoding: "UTF-8"}, desktop.CurrentLocale())

	// LC_MESSAGES takes precedence over LANG, LC_ALL over both.
	t.Setenv("LC_MESSAGES", "fr_FR")
	assert.Equal(t, desktop.Locale{Lang: "fr", Country: "FR"}, desktop.CurrentLocale())

	t.Setenv("LC_ALL", "C")
	assert.Equal(t, desktop.Locale{Lang: "fr", Country: "FR"}, desktop.CurrentLocale(), "C locale is skipped")
}
