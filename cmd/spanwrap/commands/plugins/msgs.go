package plugins

// Message constants
const (
	MsgShort = "List the registered transforms"
	MsgLong  = "List every transform the pipeline can run, marking the ones enabled by pipeline.plugins with their position."

	MsgHeaderName    = "NAME"
	MsgHeaderOrder   = "ORDER"
	MsgHeaderSummary = "DESCRIPTION"
	MsgDisabled      = "-"
)
