package desktop

import "fmt"

// ErrKind represents the possible categories of desktop entry error.
type ErrKind int8

// These kinds are reported via [Error].
const (
	// IO reports a failure reading the underlying file in [ParseFile].
	IO = ErrKind(iota)
	// InvalidUTF8 reports that the file is not valid UTF-8.
	InvalidUTF8
	// MissingDesktopEntryGroup reports that the file has no [Desktop Entry] group.
	MissingDesktopEntryGroup
	// DuplicateGroup reports a group header that was already seen.
	DuplicateGroup
	// InvalidLine reports a line that is not a comment, blank line, group
	// header, or key=value pair.
	InvalidLine
	// InvalidGroupHeader reports a group header with no closing bracket.
	InvalidGroupHeader
	// InvalidKeyName reports a key containing characters outside A-Za-z0-9-.
	InvalidKeyName
	// MissingRequiredKey reports an absent Type or Name key.
	MissingRequiredKey
	// InvalidValue reports an unusable value for a required key.
	InvalidValue
	// Validation reports a failed semantic check from [Document.Validate].
	Validation
)

func (k ErrKind) String() string {
	switch k {
	case IO:
		return "IO"
	case InvalidUTF8:
		return "InvalidUTF8"
	case MissingDesktopEntryGroup:
		return "MissingDesktopEntryGroup"
	case DuplicateGroup:
		return "DuplicateGroup"
	case InvalidLine:
		return "InvalidLine"
	case InvalidGroupHeader:
		return "InvalidGroupHeader"
	case InvalidKeyName:
		return "InvalidKeyName"
	case MissingRequiredKey:
		return "MissingRequiredKey"
	case InvalidValue:
		return "InvalidValue"
	case Validation:
		return "Validation"
	default:
		panic("Unknown ErrKind")
	}
}

func (k ErrKind) GoString() string {
	return k.String()
}

// An Error describes why a desktop entry could not be parsed or validated.
// Kind identifies the category; the other fields carry positional context
// where the category provides it.
type Error struct {
	Kind ErrKind

	// Line is the 1-based line number on which the error occurred, for the
	// kinds that refer to a specific line.
	Line int

	// Text holds the offending line for InvalidLine and InvalidGroupHeader,
	// the key name for InvalidKeyName, the group name for DuplicateGroup,
	// the raw value for InvalidValue, and the message for Validation and IO.
	Text string

	// Key is the key name for MissingRequiredKey and InvalidValue.
	Key string

	// Err is the underlying error for IO.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case IO:
		return fmt.Sprintf("IO error: %s", e.Text)
	case InvalidUTF8:
		return "File is not valid UTF-8"
	case MissingDesktopEntryGroup:
		return "Missing required [Desktop Entry] group"
	case DuplicateGroup:
		return fmt.Sprintf("Duplicate group: [%s]", e.Text)
	case InvalidLine:
		return fmt.Sprintf("Invalid line %d format: %s", e.Line, e.Text)
	case InvalidGroupHeader:
		return fmt.Sprintf("Invalid group header at line %d: %s", e.Line, e.Text)
	case InvalidKeyName:
		return fmt.Sprintf("Invalid key name at line %d: '%s'", e.Line, e.Text)
	case MissingRequiredKey:
		return fmt.Sprintf("Missing required key: %s", e.Key)
	case InvalidValue:
		return fmt.Sprintf("Invalid value for key '%s': %s", e.Key, e.Text)
	case Validation:
		return fmt.Sprintf("Validation error: %s", e.Text)
	default:
		panic("Unknown ErrKind")
	}
}

// Unwrap returns the underlying error for IO errors, and nil otherwise.
func (e *Error) Unwrap() error {
	return e.Err
}
