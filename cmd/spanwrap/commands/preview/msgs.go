package preview

// Message constants
const (
	MsgShort = "Preview a markdown file in the terminal"
	MsgLong  = `Preview renders a markdown file for the terminal with glamour. Front matter
is stripped first. The style follows the terminal background unless --style
names one (dark, light, notty, dracula, ...) or a JSON style file.`
	MsgExample = `  spanwrap preview README.md
  spanwrap preview --style light --width 72 docs/guide.md`

	MsgFlagStyle = "Glamour style name or path to a JSON style"
	MsgFlagWidth = "Word wrap width"
)
