package man

// Message constants
const (
	MsgShort = "Generate man pages"
	MsgLong  = "Generate a man page for every command into DIR, creating it if needed."
	MsgDone  = "Wrote man pages to %s\n"
)
