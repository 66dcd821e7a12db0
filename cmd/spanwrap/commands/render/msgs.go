package render

// Message constants
const (
	MsgShort = "Render markdown or HTML files with text runs wrapped"
	MsgLong  = `Render runs each input through the pipeline: front matter, markdown
conversion, HTML parsing, the configured transforms, optional sanitizing and
serialization.

With no files, or "-", input is read from stdin and written to stdout. With
--out-dir every file is written there as <name>.html (or .xhtml), rendering
several files at once up to render.concurrency.`
	MsgExample = `  spanwrap render README.md
  cat page.html | spanwrap render --format xhtml
  spanwrap render -o site docs/*.md --sanitize`

	MsgFlagOutDir   = "Write each rendering to DIR/<name>.html instead of stdout"
	MsgFlagFormat   = "Output format: html or xhtml"
	MsgFlagInput    = "Input format: auto, markdown or html"
	MsgFlagFragment = "Emit only the body contents"
	MsgFlagSanitize = "Run the output through the UGC sanitizer"
	MsgFlagPolicy   = "Wrap policy: guarded or unconditional"
	MsgFlagPlugins  = "Transforms to run, in order"
	MsgFlagIndent   = "Indent XHTML output by N spaces"

	MsgWroteFile = "%s %s %s\n"
)
