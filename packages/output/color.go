package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode controls whether escape codes are emitted.
type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

// ColorModes lists the accepted values in help order.
var ColorModes = []ColorMode{ColorAlways, ColorAuto, ColorNever}

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAlways, ColorAuto, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (use always, auto or never)", s)
}

// String, Set and Type make *ColorMode usable as a pflag.Value.
func (m *ColorMode) String() string {
	if *m == "" {
		return string(ColorAuto)
	}
	return string(*m)
}

func (m *ColorMode) Set(s string) error {
	parsed, err := ParseColorMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *ColorMode) Type() string {
	return "when"
}

// Enabled reports whether output written to w should be colored.
// In auto mode that means w is a terminal, NO_COLOR is unset and TERM is not "dumb".
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
