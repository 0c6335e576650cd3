package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of `quill check --ui`.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

func (m uiMode) String() string {
	return [...]string{"auto", "on", "off"}[m]
}

func readUIMode(value string) (uiMode, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, m := range []uiMode{uiModeAuto, uiModeOn, uiModeOff} {
		if v == m.String() {
			return m, nil
		}
	}
	if v == "" {
		return uiModeAuto, nil
	}
	return uiModeAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// checkUI decides whether `quill check` draws the progress view. JSON output
// stays machine readable, so it never gets one; in auto mode a single file
// is not worth the redraw either.
func checkUI(mode uiMode, format diagFormat, files int, tty bool) bool {
	if format == diagFormatJSON {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return tty && files > 1
	}
}

func stdoutIsTerminal() bool {
	return isTerminal(os.Stdout)
}
