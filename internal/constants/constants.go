package constants

const (
	// AppName is used for the config directory, log prefix, and backup names.
	AppName = "tend"

	// DateFormat is the calendar-date layout used for every persisted date.
	// Dates never carry a time component.
	DateFormat = "2006-01-02"

	// DefaultStoreFile is the document file created under the user config
	// directory when no --config path is given.
	DefaultStoreFile = "tend.json"

	// DefaultUserName is the display name assigned on first run.
	DefaultUserName = "User"
)
