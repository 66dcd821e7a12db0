package config

// Message constants
const (
	MsgShort = "Print the effective configuration"
	MsgLong  = `Print the configuration that results from merging the defaults, the user
config, the project config, SPANWRAP_* variables and --config, as TOML.

With --template the built-in defaults are printed with every value commented
out, ready to be saved as .spanwrap.toml. --write saves that template in the
working directory.`
	MsgExample = `  spanwrap config
  spanwrap config --template > .spanwrap.toml
  spanwrap config --write`

	MsgFlagTemplate = "Print a commented config template instead"
	MsgFlagWrite    = "Write the template to .spanwrap.toml"
	MsgWritten      = "Wrote %s\n"
)
