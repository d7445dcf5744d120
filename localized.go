package desktop

import "slices"

// A Localized value holds the default for a key together with its
// locale-tagged variants. Variants keep the order in which they were first
// added, so serializing a document is deterministic.
type Localized[T any] struct {
	// Default is the value of the key without a locale suffix.
	Default T

	order     []Locale
	localized map[Locale]T
}

// LocalizedString is a localizable string value, used for the Name,
// GenericName, Comment, and Icon keys.
type LocalizedString = Localized[string]

// LocalizedList is a localizable semicolon-separated list, used for the
// Keywords key.
type LocalizedList = Localized[[]string]

// NewLocalizedString returns a LocalizedString with only a default value.
func NewLocalizedString(def string) LocalizedString {
	return LocalizedString{Default: def}
}

// SetLocalized adds or replaces the variant for loc. Replacing an existing
// variant keeps its original position in serialization order.
func (l *Localized[T]) SetLocalized(loc Locale, value T) {
	if l.localized == nil {
		l.localized = make(map[Locale]T)
	}
	if _, ok := l.localized[loc]; !ok {
		l.order = append(l.order, loc)
	}
	l.localized[loc] = value
}

// Lookup returns the variant stored for exactly loc, without any fallback.
func (l *Localized[T]) Lookup(loc Locale) (T, bool) {
	v, ok := l.localized[loc]
	return v, ok
}

// Locales returns the stored locales in the order their variants were first
// added.
func (l *Localized[T]) Locales() []Locale {
	return slices.Clone(l.order)
}

// Get returns the best variant for query, applying the format's matching
// rules in order:
//
//  1. the exact query, all four components as stored
//  2. if the query has both a country and a modifier: the query without its
//     country
//  3. if the query has a modifier: the query without its modifier
//  4. if the query has a country or a modifier: the bare language
//  5. the default value
//
// The query's encoding is carried into steps 2 and 3 unchanged, so a stored
// variant that differs only in encoding is not matched before step 4.
func (l *Localized[T]) Get(query Locale) T {
	if v, ok := l.localized[query]; ok {
		return v
	}
	if query.Country != "" && query.Modifier != "" {
		q := query
		q.Country = ""
		if v, ok := l.localized[q]; ok {
			return v
		}
	}
	if query.Modifier != "" {
		q := query
		q.Modifier = ""
		if v, ok := l.localized[q]; ok {
			return v
		}
	}
	if query.Country != "" || query.Modifier != "" {
		if v, ok := l.localized[Locale{Lang: query.Lang}]; ok {
			return v
		}
	}
	return l.Default
}
