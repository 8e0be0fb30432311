package log

import "github.com/evilsocket/islazy/tui"

// Verbosity orders log levels from the most to the least chatty; a
// logger only emits messages at or above its configured Level.
type Verbosity int

const (
	VERBOSE Verbosity = iota
	DEBUG
	INFO
	IMPORTANT
	WARNING
	ERROR
	FATAL
)

// LevelNames is the {level:name} token substitution for each Verbosity.
var LevelNames = map[Verbosity]string{
	VERBOSE:   "VERB",
	DEBUG:     "DBG ",
	INFO:      "INFO",
	IMPORTANT: "IMPT",
	WARNING:   "WARN",
	ERROR:     "ERR ",
	FATAL:     "FATL",
}

// LevelColors is the {level:color} token substitution for each Verbosity.
var LevelColors = map[Verbosity]string{
	VERBOSE:   tui.FOREWHITE,
	DEBUG:     tui.DIM,
	INFO:      tui.BLUE,
	IMPORTANT: tui.GREEN,
	WARNING:   tui.YELLOW,
	ERROR:     tui.RED,
	FATAL:     tui.BACKRED,
}
