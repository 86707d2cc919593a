package defs

import "time"

const (
	ProgramName = "helios-apt"

	// DefaultMountPattern matches the mount path of an APTonCD medium.
	DefaultMountPattern = `.*APT.*`
	// SourceLineFormat is the single line written to the primary source list
	// while APT is pointed at a local repository.
	SourceLineFormat = "deb file:%s/ /\n"
)

// Severity labels carried by operation results.
const (
	LabelOK     = "OK:"
	LabelNotice = "Notice:"
	LabelError  = "Error:"
)

// Popup dialog defaults.
const (
	DialogBinary = "yad"

	PopupFont       = "Liberation Mono Regular 12"
	NoticeFore      = "#0F482E"
	ErrorFore       = "#961D1D"
	PopupBack       = "#FFFACD"
	PopupMinTimeout = 3

	PasswordTitle = "Enter Your Password"
	PasswordLabel = "Enter Password"
	PasswordWidth = 340

	FatalMessage = "Program Script Terminated"
	FatalDelay   = 1 * time.Second
)
