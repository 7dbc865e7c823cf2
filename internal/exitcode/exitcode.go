package exitcode

const (
	Success          = 0
	UsageError       = 1
	ValidationError  = 2
	ParseError       = 3
	ConsolidateError = 4
	WriteError       = 5
	PartialSuccess   = 6
)
