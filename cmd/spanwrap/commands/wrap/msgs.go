package wrap

// Message constants
const (
	MsgShort = "Wrap text runs of an HTML fragment"
	MsgLong  = `Wrap reads HTML from a file or stdin, runs only the wrap-text-runs
transform and writes the result to stdout. Other configured transforms and
markdown conversion are skipped, which makes it a small filter for other
tools.`
	MsgExample = `  echo '<p>hello <em>world</em></p>' | spanwrap wrap
  spanwrap wrap --full page.html > page.wrapped.html`

	MsgFlagFull = "Parse and emit a full document instead of a fragment"
)
