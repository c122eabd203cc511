// Package ascii provides terminal ANSI color codes and the helpers
// used to wrap text with them.
package ascii

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[1;31m"
	Yellow = "\033[1;33m"
	Green  = "\033[1;32m"
	Blue   = "\033[1;34m"
	Cyan   = "\033[1;36m"
	Gray   = "\033[90m" // Bright black, actually

	Magenta = "\033[1;35m"
	White   = "\033[1;37m"
	Bold    = "\033[1m"

	// 256-color palette
	Orange  = "\033[38;5;208m"
	Gray245 = "\033[1;38;5;245m" // Medium gray
	Purple  = "\033[1;38;5;99m"
	Pink    = "\033[1;38;5;127m"
)

var byName = map[string]string{
	"red":     Red,
	"yellow":  Yellow,
	"green":   Green,
	"blue":    Blue,
	"cyan":    Cyan,
	"gray":    Gray,
	"magenta": Magenta,
	"white":   White,
	"bold":    Bold,
	"orange":  Orange,
	"purple":  Purple,
	"pink":    Pink,
}

// Lookup returns the escape sequence of a color given its name
func Lookup(name string) (string, bool) {
	color, ok := byName[name]
	return color, ok
}

// Names returns the sorted list of names Lookup knows about
func Names() []string {
	names := maps.Keys(byName)
	slices.Sort(names)
	return names
}

// Colorize wraps `text` within `color` and a reset sequence.  An
// empty color leaves the text untouched.
func Colorize(text, color string) string {
	if color == "" {
		return text
	}
	return color + text + Reset
}

func Color(color, format string, args ...any) string {
	return Colorize(fmt.Sprintf(format, args...), color)
}
