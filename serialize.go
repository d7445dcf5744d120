package desktop

import (
	"io"
	"strconv"
	"strings"
)

// String serializes the document back to desktop entry text.
//
// Emission is deterministic and ignores the original file order: leading
// comments first, then the [Desktop Entry] group with its keys in the fixed
// schema order, then unknown keys, then each additional group. Unknown keys,
// additional groups, entries within a group, and localized variants all keep
// their insertion order. Lists are joined with ';' and booleans rendered as
// the literals true and false.
func (d *Document) String() string {
	var b strings.Builder

	for _, c := range d.LeadingComments {
		if !c.IsBlank {
			b.WriteByte('#')
			b.WriteString(c.Text)
		}
		b.WriteByte('\n')
	}

	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=")
	b.WriteString(d.EntryType.String())
	b.WriteByte('\n')

	writeString(&b, "Version", d.Version)
	writeLocalized(&b, "Name", &d.Name)
	writeLocalized(&b, "GenericName", d.GenericName)
	writeBool(&b, "NoDisplay", d.NoDisplay)
	writeLocalized(&b, "Comment", d.Comment)
	writeLocalized(&b, "Icon", d.Icon)
	writeBool(&b, "Hidden", d.Hidden)
	writeList(&b, "OnlyShowIn", d.OnlyShowIn)
	writeList(&b, "NotShowIn", d.NotShowIn)
	writeBool(&b, "DBusActivatable", d.DBusActivatable)
	writeString(&b, "TryExec", d.TryExec)
	writeString(&b, "Exec", d.Exec)
	writeString(&b, "Path", d.Path)
	writeBool(&b, "Terminal", d.Terminal)
	writeList(&b, "Actions", d.Actions)
	writeList(&b, "MimeType", d.MimeType)
	writeList(&b, "Categories", d.Categories)
	writeList(&b, "Implements", d.Implements)
	writeLocalizedList(&b, "Keywords", d.Keywords)
	writeBool(&b, "StartupNotify", d.StartupNotify)
	writeString(&b, "StartupWMClass", d.StartupWMClass)
	writeString(&b, "URL", d.URL)
	writeBool(&b, "PrefersNonDefaultGPU", d.PrefersNonDefaultGPU)
	writeBool(&b, "SingleMainWindow", d.SingleMainWindow)

	for _, key := range d.UnknownKeys.Keys() {
		for _, e := range d.UnknownKeys.Get(key) {
			writeEntry(&b, e)
		}
	}

	for _, name := range d.AdditionalGroups.Names() {
		g := d.AdditionalGroups.Get(name)
		b.WriteString("\n[")
		b.WriteString(g.Name)
		b.WriteString("]\n")
		for _, key := range g.Entries.Keys() {
			for _, e := range g.Entries.Get(key) {
				writeEntry(&b, e)
			}
		}
	}

	return b.String()
}

// WriteTo serializes the document to w. It implements [io.WriterTo].
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func writeLine(b *strings.Builder, key string, locale *Locale, value string) {
	b.WriteString(key)
	if locale != nil {
		b.WriteByte('[')
		b.WriteString(locale.String())
		b.WriteByte(']')
	}
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteByte('\n')
}

func writeEntry(b *strings.Builder, e Entry) {
	writeLine(b, e.Key, e.Locale, e.Value)
}

func writeString(b *strings.Builder, key string, v *string) {
	if v != nil {
		writeLine(b, key, nil, *v)
	}
}

func writeBool(b *strings.Builder, key string, v *bool) {
	if v != nil {
		writeLine(b, key, nil, strconv.FormatBool(*v))
	}
}

func writeList(b *strings.Builder, key string, v []string) {
	if v != nil {
		writeLine(b, key, nil, strings.Join(v, ";"))
	}
}

func writeLocalized(b *strings.Builder, key string, v *LocalizedString) {
	if v == nil {
		return
	}
	writeLine(b, key, nil, v.Default)
	for _, loc := range v.order {
		writeLine(b, key, &loc, v.localized[loc])
	}
}

func writeLocalizedList(b *strings.Builder, key string, v *LocalizedList) {
	if v == nil {
		return
	}
	writeLine(b, key, nil, strings.Join(v.Default, ";"))
	for _, loc := range v.order {
		writeLine(b, key, &loc, strings.Join(v.localized[loc], ";"))
	}
}
