// Package term holds the ANSI sequences used by the console logger and the
// rename preview, and decides once at startup whether they are emitted.
package term

import (
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/tragoedia0722/batchrename/internal/config"
)

// Escape sequences; all empty while colour is off.
var (
	Red    string // matches, errors
	Green  string // replacements, success
	Yellow string // warnings
	Blue   string // info
	Cyan   string // debug
	NC     string // reset
)

// Configure switches colour on or off for mode.
func Configure(mode config.ColorMode) {
	on := resolve(mode)
	for _, c := range []struct {
		v   *string
		seq string
	}{
		{&Red, "\033[1;91m"},
		{&Green, "\033[1;92m"},
		{&Yellow, "\033[1;93m"},
		{&Blue, "\033[1;94m"},
		{&Cyan, "\033[1;96m"},
		{&NC, "\033[0m"},
	} {
		*c.v = ""
		if on {
			*c.v = c.seq
		}
	}
}

// Enabled reports whether colour is on.
func Enabled() bool { return NC != "" }

// resolve applies auto detection: stdout must be a terminal, NO_COLOR
// (https://no-color.org) unset and TERM not "dumb".
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && xterm.IsTerminal(int(f.Fd()))
}
