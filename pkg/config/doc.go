// Package config loads spanwrap's layered configuration.
//
// Values come from the embedded defaults, the user's XDG config file, a
// project file in the working directory and SPANWRAP_* environment
// variables, merged in that order with koanf and decoded into Config.
package config
