package desktop

import (
	"iter"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lineRegexp    = regexp.MustCompile("\r\n|\r|\n")
	keyNameRegexp = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

func lines(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lno := 1
		for match := lineRegexp.FindStringIndex(input); match != nil; match = lineRegexp.FindStringIndex(input) {
			if !yield(lno, input[:match[0]]) {
				return
			}
			input = input[match[1]:]
			lno++
		}
		yield(lno, input)
	}
}

// Parse builds a [Document] from a complete desktop entry file.
//
// Each line is classified as a blank line, a comment, a group header, or a
// key=value pair; anything else aborts the parse. The first grammar
// violation wins: no partial document is ever returned. Comments and blank
// lines before the first group header are preserved in
// [Document.LeadingComments]; inside a group they are dropped.
func Parse(text string) (*Document, error) {
	var (
		groups  GroupMap
		current *Group
		leading []Comment
	)

	for lno, line := range lines(text) {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			if current == nil {
				leading = append(leading, Comment{IsBlank: true})
			}

		case strings.HasPrefix(trimmed, "#"):
			if current == nil {
				leading = append(leading, Comment{Text: trimmed[1:]})
			}

		case strings.HasPrefix(trimmed, "["):
			if !strings.HasSuffix(trimmed, "]") {
				return nil, &Error{Kind: InvalidGroupHeader, Line: lno, Text: line}
			}
			name := trimmed[1 : len(trimmed)-1]
			if groups.Get(name) != nil {
				return nil, &Error{Kind: DuplicateGroup, Text: name}
			}
			current = &Group{Name: name}
			groups.Add(current)

		default:
			keyPart, value, found := strings.Cut(line, "=")
			if !found || current == nil {
				return nil, &Error{Kind: InvalidLine, Line: lno, Text: line}
			}

			key := keyPart
			var locale *Locale
			if i := strings.Index(keyPart, "["); i >= 0 {
				j := strings.Index(keyPart, "]")
				if j < i {
					return nil, &Error{Kind: InvalidLine, Line: lno, Text: line}
				}
				key = keyPart[:i]
				l := ParseLocale(keyPart[i+1 : j])
				locale = &l
			}
			key = strings.TrimSpace(key)

			if !keyNameRegexp.MatchString(key) {
				return nil, &Error{Kind: InvalidKeyName, Line: lno, Text: key}
			}

			current.Entries.Add(Entry{Key: key, Locale: locale, Value: value})
		}
	}

	return build(&groups, leading)
}

// ParseFile reads and parses the desktop entry file at path. Read failures
// are reported with kind [IO], and files that are not valid UTF-8 with kind
// [InvalidUTF8].
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: IO, Text: err.Error(), Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &Error{Kind: InvalidUTF8}
	}
	return Parse(string(data))
}

// knownKeys are the [Desktop Entry] keys materialized into typed Document
// fields; everything else lands in UnknownKeys.
var knownKeys = map[string]bool{
	"Type": true, "Version": true, "Name": true, "GenericName": true,
	"NoDisplay": true, "Comment": true, "Icon": true, "Hidden": true,
	"OnlyShowIn": true, "NotShowIn": true, "DBusActivatable": true,
	"TryExec": true, "Exec": true, "Path": true, "Terminal": true,
	"Actions": true, "MimeType": true, "Categories": true,
	"Implements": true, "Keywords": true, "StartupNotify": true,
	"StartupWMClass": true, "URL": true, "PrefersNonDefaultGPU": true,
	"SingleMainWindow": true,
}

func build(groups *GroupMap, leading []Comment) (*Document, error) {
	main := groups.Get("Desktop Entry")
	if main == nil {
		return nil, &Error{Kind: MissingDesktopEntryGroup}
	}

	typeEntries := main.Entries.Get("Type")
	if len(typeEntries) == 0 {
		return nil, &Error{Kind: MissingRequiredKey, Key: "Type"}
	}
	entryType, ok := ParseEntryType(typeEntries[0].Value)
	if !ok {
		return nil, &Error{Kind: InvalidValue, Key: "Type", Text: typeEntries[0].Value}
	}

	nameEntries := main.Entries.Get("Name")
	if len(nameEntries) == 0 {
		return nil, &Error{Kind: MissingRequiredKey, Key: "Name"}
	}

	doc := NewDocument(entryType, buildLocalized(nameEntries))
	doc.LeadingComments = leading

	doc.Version = optString(main, "Version")
	doc.GenericName = optLocalized(main, "GenericName")
	doc.NoDisplay = optBool(main, "NoDisplay")
	doc.Comment = optLocalized(main, "Comment")
	doc.Icon = optLocalized(main, "Icon")
	doc.Hidden = optBool(main, "Hidden")
	doc.OnlyShowIn = optList(main, "OnlyShowIn")
	doc.NotShowIn = optList(main, "NotShowIn")
	doc.DBusActivatable = optBool(main, "DBusActivatable")
	doc.TryExec = optString(main, "TryExec")
	doc.Exec = optString(main, "Exec")
	doc.Path = optString(main, "Path")
	doc.Terminal = optBool(main, "Terminal")
	doc.Actions = optList(main, "Actions")
	doc.MimeType = optList(main, "MimeType")
	doc.Categories = optList(main, "Categories")
	doc.Implements = optList(main, "Implements")
	doc.Keywords = optLocalizedList(main, "Keywords")
	doc.StartupNotify = optBool(main, "StartupNotify")
	doc.StartupWMClass = optString(main, "StartupWMClass")
	doc.URL = optString(main, "URL")
	doc.PrefersNonDefaultGPU = optBool(main, "PrefersNonDefaultGPU")
	doc.SingleMainWindow = optBool(main, "SingleMainWindow")

	for _, key := range main.Entries.Keys() {
		if knownKeys[key] {
			continue
		}
		for _, e := range main.Entries.Get(key) {
			doc.UnknownKeys.Add(e)
		}
	}

	for _, name := range groups.Names() {
		if name == "Desktop Entry" {
			continue
		}
		doc.AdditionalGroups.Add(groups.Get(name))
	}

	return doc, nil
}

// firstUntagged returns the value of the first entry without a locale tag.
// Later duplicates are ignored.
func firstUntagged(entries []Entry) (string, bool) {
	for _, e := range entries {
		if e.Locale == nil {
			return e.Value, true
		}
	}
	return "", false
}

func optString(g *Group, key string) *string {
	if v, ok := firstUntagged(g.Entries.Get(key)); ok {
		return &v
	}
	return nil
}

// optBool accepts only the literal values true and false; anything else
// leaves the field unset without an error.
func optBool(g *Group, key string) *bool {
	v, ok := firstUntagged(g.Entries.Get(key))
	if !ok {
		return nil
	}
	switch v {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	default:
		return nil
	}
}

func splitList(value string) []string {
	var list []string
	for _, s := range strings.Split(value, ";") {
		if s != "" {
			list = append(list, s)
		}
	}
	return list
}

// optList splits on ';' and drops empty segments. A value with no non-empty
// segments leaves the field unset rather than set to an empty list.
func optList(g *Group, key string) []string {
	v, ok := firstUntagged(g.Entries.Get(key))
	if !ok {
		return nil
	}
	return splitList(v)
}

// buildLocalized folds every entry for a key into one localized value. The
// untagged entry supplies the default; if two entries decompose to the same
// locale, the later one wins.
func buildLocalized(entries []Entry) LocalizedString {
	var l LocalizedString
	for _, e := range entries {
		if e.Locale == nil {
			l.Default = e.Value
		} else {
			l.SetLocalized(*e.Locale, e.Value)
		}
	}
	return l
}

func optLocalized(g *Group, key string) *LocalizedString {
	entries := g.Entries.Get(key)
	if len(entries) == 0 {
		return nil
	}
	l := buildLocalized(entries)
	return &l
}

func optLocalizedList(g *Group, key string) *LocalizedList {
	entries := g.Entries.Get(key)
	if len(entries) == 0 {
		return nil
	}
	var l LocalizedList
	for _, e := range entries {
		if e.Locale == nil {
			l.Default = splitList(e.Value)
		} else {
			l.SetLocalized(*e.Locale, splitList(e.Value))
		}
	}
	return &l
}
