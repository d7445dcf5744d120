package desktop

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// A Locale identifies a translation in the form
// lang[_COUNTRY][.ENCODING][@MODIFIER], as used in locale-suffixed keys like
// Name[sr_YU@Latn]. The Country, Encoding, and Modifier components are
// optional and empty when absent.
//
// Locale is a comparable value and may be used as a map key. All four
// components participate in equality, including Encoding, so en_US and
// en_US.UTF-8 are distinct keys.
type Locale struct {
	Lang     string
	Country  string
	Encoding string
	Modifier string
}

// ParseLocale decomposes a locale token. Components are consumed
// rightmost-first: the modifier after the last '@', then the encoding after
// the last '.' of what remains, then the country after the first '_';
// whatever is left is the language.
func ParseLocale(s string) Locale {
	var l Locale
	if i := strings.LastIndex(s, "@"); i >= 0 {
		l.Modifier = s[i+1:]
		s = s[:i]
	}
	if i := strings.LastIndex(s, "."); i >= 0 {
		l.Encoding = s[i+1:]
		s = s[:i]
	}
	if i := strings.Index(s, "_"); i >= 0 {
		l.Country = s[i+1:]
		s = s[:i]
	}
	l.Lang = s
	return l
}

// String recomposes the locale token, omitting absent components. It is the
// inverse of [ParseLocale] for well-formed input.
func (l Locale) String() string {
	var b strings.Builder
	b.WriteString(l.Lang)
	if l.Country != "" {
		b.WriteByte('_')
		b.WriteString(l.Country)
	}
	if l.Encoding != "" {
		b.WriteByte('.')
		b.WriteString(l.Encoding)
	}
	if l.Modifier != "" {
		b.WriteByte('@')
		b.WriteString(l.Modifier)
	}
	return b.String()
}

// LocaleFromTag converts a BCP 47 language tag to its closest desktop entry
// locale: the base language becomes Lang, the region becomes Country, and
// the script, if present, becomes the Modifier (the convention used by
// locales such as sr_RS@Latn). Encoding has no BCP 47 counterpart and is
// left empty.
func LocaleFromTag(tag language.Tag) Locale {
	base, script, region := tag.Raw()

	l := Locale{Lang: base.String()}
	if r := region.String(); region.IsCountry() && r != "ZZ" {
		l.Country = r
	}
	if s := script.String(); s != "Zzzz" {
		l.Modifier = s
	}
	return l
}

// CurrentLocale returns the locale of the current process, following the
// POSIX precedence of LC_ALL, then LC_MESSAGES, then LANG. The C and POSIX
// locales, and an unset environment, yield plain "en".
func CurrentLocale() Locale {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" && v != "C" && v != "POSIX" {
			return ParseLocale(v)
		}
	}
	return Locale{Lang: "en"}
}
