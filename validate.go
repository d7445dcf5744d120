package desktop

// Validate checks the type-dependent required fields: a Link entry must have
// a URL, and an Application entry must have either Exec or
// DBusActivatable=true. Directory entries have no extra requirements.
//
// Validation is never run by [Parse]; a document that fails it is still
// fully usable and serializable.
func (d *Document) Validate() error {
	if d.EntryType == Link && d.URL == nil {
		return &Error{Kind: Validation, Text: "URL is required for Link type entries"}
	}
	if d.EntryType == Application {
		activatable := d.DBusActivatable != nil && *d.DBusActivatable
		if d.Exec == nil && !activatable {
			return &Error{Kind: Validation, Text: "Either Exec key or DBusActivatable=true is required for Application type"}
		}
	}
	return nil
}
