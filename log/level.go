package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const colorReset = "\033[0m"

var levels = [...]struct {
	label     string
	color     string
	boldColor string
}{
	TRACE: {label: "TRACE", color: "\033[38m", boldColor: "\033[47m"},
	DEBUG: {label: "DEBUG", color: "\033[37m", boldColor: "\033[100m"},
	INFO:  {label: "INFO", color: "\033[36m", boldColor: "\033[106m"},
	WARN:  {label: "WARN", color: "\033[33m", boldColor: "\u001B[30m\033[103m"},
	ERROR: {label: "ERROR", color: "\033[31m", boldColor: "\033[101m"},
	FATAL: {label: "FATAL", color: "\033[41m", boldColor: "\033[101m"},
	QUIET: {label: "QUIET", color: colorReset, boldColor: ""},
}

func (l Level) valid() bool {
	return l >= TRACE && l <= QUIET
}

func (l Level) String() string {
	if !l.valid() {
		return levels[QUIET].label
	}

	return levels[l].label
}

func (l Level) Color() string {
	if !l.valid() {
		return levels[QUIET].color
	}

	return levels[l].color
}

func (l Level) BoldColor() string {
	if !l.valid() {
		return levels[QUIET].boldColor
	}

	return levels[l].boldColor
}

// FromString parses level label case-insensitively, unknown labels are QUIET.
func FromString(s string) Level {
	for l := TRACE; l <= QUIET; l++ {
		if strings.EqualFold(levels[l].label, s) {
			return l
		}
	}

	return QUIET
}
