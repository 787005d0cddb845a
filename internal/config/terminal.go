package config

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/inoxlang/viewseq/internal/utils"
)

var (
	FORCE_COLOR           bool
	NO_COLOR              bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool

	// color support of the environment, it does not depend on the output.
	SHOULD_COLORIZE bool
)

func init() {
	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	TRUECOLOR_COLORTERM = os.Getenv("COLORTERM") == "truecolor"
	NO_COLOR = termenv.EnvNoColor()

	if strings.Contains(os.Getenv("TERM"), "256color") {
		TERM_256COLOR_CAPABLE = true
	}

	SHOULD_COLORIZE = !NO_COLOR &&
		(FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE || termenv.EnvColorProfile() != termenv.Ascii)
}

// ShouldColorize reports whether colors should be written to w: the environment should support colors and
// w should be a terminal, unless colors are forced.
func ShouldColorize(w io.Writer) bool {
	if !SHOULD_COLORIZE {
		return false
	}
	if FORCE_COLOR {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// plainWriter removes the ANSI escape sequences of what is written to it, it is used for
// non-colorized pretty logs so that messages and field values cannot change the terminal state.
type plainWriter struct {
	w io.Writer
}

func (p plainWriter) Write(b []byte) (int, error) {
	s := string(b)
	if !utils.HasANSISequences(s) {
		return p.w.Write(b)
	}
	if _, err := io.WriteString(p.w, utils.StripANSISequences(s)); err != nil {
		return 0, err
	}
	return len(b), nil
}
