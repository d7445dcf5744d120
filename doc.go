// Package desktop implements parsing, validating, and serializing files in
// the [Desktop Entry Format].
//
// A desktop entry is an INI-like text file describing a launchable
// application, a URL link, or a directory. It consists of bracketed group
// headers followed by Key=value lines, where a key may carry a bracketed
// locale suffix to provide a translated variant:
//
//	[Desktop Entry]
//	Type=Application
//	Name=Foo Viewer
//	Name[fr]=Visionneuse Foo
//	Exec=fooview %F
//	Categories=Utility;Viewer;
//
// [Parse] turns a complete file into a [Document] with typed fields for
// every key the format defines, while keeping unrecognized keys and groups
// verbatim so that a document can be serialized back without losing
// extension data. Localized fields are represented as [LocalizedString] or
// [LocalizedList] values whose Get method applies the format's locale
// matching rules.
//
// Grammar violations (a malformed header, a line that is neither comment nor
// key=value, a duplicate group) abort parsing with an [Error] identifying
// the offending line. Malformed values for typed keys, by contrast, never
// fail the parse: a boolean that is not literally "true" or "false", or a
// list with no non-empty segments, simply leaves the typed field unset.
//
// [Desktop Entry Format]: https://specifications.freedesktop.org/desktop-entry-spec/latest/
package desktop
