package domain

// EntryKind determines how a template entry's value is located in the
// commit message.
type EntryKind string

const (
	// KindKeyValue matches a "Key: value" line in the message body.
	KindKeyValue EntryKind = "KEY_VALUE"
	// KindSubjectPattern collects regex matches from the subject line.
	KindSubjectPattern EntryKind = "SUBJECT_PATTERN"
	// KindBodyPattern collects regex matches from the full message.
	KindBodyPattern EntryKind = "BODY_PATTERN"
)

// ValueType is the expected type of an extracted entry value.
type ValueType string

const (
	ValueTypeBoolean ValueType = "BOOLEAN"
	ValueTypeInteger ValueType = "INTEGER"
	ValueTypeString  ValueType = "STRING"
)

// EntryStatus is the validation outcome for a single template entry.
type EntryStatus string

const (
	// StatusValid means the entry is satisfied by the commit message.
	StatusValid EntryStatus = "VALID"
	// StatusMissingKey means the key never occurred in the message.
	StatusMissingKey EntryStatus = "MISSING_KEY"
	// StatusMissingValue means the key occurred without a value, or a
	// pattern entry matched nothing.
	StatusMissingValue EntryStatus = "MISSING_VALUE"
	// StatusInvalidValue means a value was present but failed its type,
	// pattern, or endpoint check.
	StatusInvalidValue EntryStatus = "INVALID_VALUE"
)

// EndpointType identifies the kind of external system an entry value is
// cross-checked against. Adding a new external system means adding a
// constant here and a handler case in the validator, not touching callers.
type EndpointType string

const (
	EndpointJira EndpointType = "JIRA"
)
