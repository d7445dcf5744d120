package desktop

import "slices"

// EntryType represents the possible kinds of desktop entry.
type EntryType int8

const (
	Application = EntryType(iota)
	Link
	Directory
)

// ParseEntryType returns the entry type named by a raw Type value, and
// whether the value names one at all.
func ParseEntryType(s string) (EntryType, bool) {
	switch s {
	case "Application":
		return Application, true
	case "Link":
		return Link, true
	case "Directory":
		return Directory, true
	default:
		return 0, false
	}
}

func (t EntryType) String() string {
	switch t {
	case Application:
		return "Application"
	case Link:
		return "Link"
	case Directory:
		return "Directory"
	default:
		panic("Unknown EntryType")
	}
}

func (t EntryType) GoString() string {
	return t.String()
}

// An Entry is one physical Key=value line. Locale is nil for lines without a
// locale suffix, and Value is the raw text after the first '='.
type Entry struct {
	Key    string
	Locale *Locale
	Value  string
}

// A Comment records a comment or blank line occurring before the first group
// header. For comments, Text is the content after the '#'.
type Comment struct {
	Text    string
	IsBlank bool
}

// An EntryMap maps key names to the entries sharing that key, in file order,
// remembering the order in which keys first appeared. The zero value is an
// empty map ready for use.
type EntryMap struct {
	keys    []string
	entries map[string][]Entry
}

// Add appends e to the entries for its key.
func (m *EntryMap) Add(e Entry) {
	if m.entries == nil {
		m.entries = make(map[string][]Entry)
	}
	if _, ok := m.entries[e.Key]; !ok {
		m.keys = append(m.keys, e.Key)
	}
	m.entries[e.Key] = append(m.entries[e.Key], e)
}

// Keys returns the key names in order of first appearance.
func (m *EntryMap) Keys() []string {
	return slices.Clone(m.keys)
}

// Get returns every entry for key, in file order, or nil if the key is
// absent.
func (m *EntryMap) Get(key string) []Entry {
	return m.entries[key]
}

// Len returns the number of distinct keys.
func (m *EntryMap) Len() int {
	return len(m.keys)
}

// A Group is a named section of Key=value lines. Every physical line for a
// key is preserved, including duplicates.
type Group struct {
	Name    string
	Entries EntryMap
}

// A GroupMap maps group names to groups, remembering the order in which they
// appeared. The zero value is an empty map ready for use.
type GroupMap struct {
	names  []string
	groups map[string]*Group
}

// Add inserts g. Adding a group whose name is already present replaces the
// stored group but keeps its original position.
func (m *GroupMap) Add(g *Group) {
	if m.groups == nil {
		m.groups = make(map[string]*Group)
	}
	if _, ok := m.groups[g.Name]; !ok {
		m.names = append(m.names, g.Name)
	}
	m.groups[g.Name] = g
}

// Get returns the group named name, or nil if it is absent.
func (m *GroupMap) Get(name string) *Group {
	return m.groups[name]
}

// Names returns the group names in order of first appearance.
func (m *GroupMap) Names() []string {
	return slices.Clone(m.names)
}

// Len returns the number of groups.
func (m *GroupMap) Len() int {
	return len(m.names)
}

// A Document is a parsed desktop entry file: the [Desktop Entry] group
// materialized into typed fields, plus everything needed to serialize the
// file back without losing extension data.
//
// EntryType and Name are always present after a successful [Parse]. The
// remaining typed fields are nil when the corresponding key is absent or its
// value was unusable. A Document has no internal sharing and is safe for
// concurrent reads; mutating one concurrently is the caller's problem.
type Document struct {
	EntryType EntryType
	Name      LocalizedString

	Version              *string
	GenericName          *LocalizedString
	NoDisplay            *bool
	Comment              *LocalizedString
	Icon                 *LocalizedString
	Hidden               *bool
	OnlyShowIn           []string
	NotShowIn            []string
	DBusActivatable      *bool
	TryExec              *string
	Exec                 *string
	Path                 *string
	Terminal             *bool
	Actions              []string
	MimeType             []string
	Categories           []string
	Implements           []string
	Keywords             *LocalizedList
	StartupNotify        *bool
	StartupWMClass       *string
	URL                  *string
	PrefersNonDefaultGPU *bool
	SingleMainWindow     *bool

	// UnknownKeys holds unrecognized keys from the [Desktop Entry] group,
	// verbatim, with locale tags intact.
	UnknownKeys EntryMap

	// AdditionalGroups holds every group other than [Desktop Entry], such as
	// [Desktop Action x] groups and vendor extensions.
	AdditionalGroups GroupMap

	// LeadingComments holds the comments and blank lines that preceded the
	// first group header. Comments inside groups are not preserved.
	LeadingComments []Comment
}

// NewDocument returns a minimal document with the two required fields set.
func NewDocument(entryType EntryType, name LocalizedString) *Document {
	return &Document{EntryType: entryType, Name: name}
}
