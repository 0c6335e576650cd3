package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quill/internal/diag"
	"quill/internal/source"
)

type palette struct {
	err, warn, info, note *color.Color
	code, path, gutter    *color.Color
	caret                 *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.FgWhite, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	// глобальный color.NoColor зависит от TTY, здесь решает вызывающий
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, p, &d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

// PrettyRuntime renders a runtime fault with the same layout as a diagnostic.
// id is the fault code, e.g. VM1001.
func PrettyRuntime(w io.Writer, id, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	if fs == nil || int(span.File) >= fs.Len() {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", p.err.Sprint("PANIC"), p.code.Sprint(id), msg)
		return err
	}
	start, _ := fs.Resolve(span)
	path := formatPath(fs.Get(span.File), opts.PathMode, opts.BaseDir)
	if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", path, start.Line, start.Col),
		p.err.Sprint("PANIC"), p.code.Sprint(id), msg); err != nil {
		return err
	}
	return writeSnippet(w, p, fs, span, opts.Context)
}

func prettyOne(w io.Writer, p palette, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	sevColor := p.severity(d.Severity)
	if fs == nil || int(d.Primary.File) >= fs.Len() {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", sevColor.Sprint(d.Severity.String()), p.code.Sprint(d.Code.ID()), d.Message)
		return err
	}
	start, _ := fs.Resolve(d.Primary)
	path := formatPath(fs.Get(d.Primary.File), opts.PathMode, opts.BaseDir)
	if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", path, start.Line, start.Col),
		sevColor.Sprint(d.Severity.String()), p.code.Sprint(d.Code.ID()), d.Message); err != nil {
		return err
	}
	if err := writeSnippet(w, p, fs, d.Primary, opts.Context); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, note := range d.Notes {
		if fs == nil || int(note.Span.File) >= fs.Len() {
			if _, err := fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), note.Msg); err != nil {
				return err
			}
			continue
		}
		ns, _ := fs.Resolve(note.Span)
		npath := formatPath(fs.Get(note.Span.File), opts.PathMode, opts.BaseDir)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), npath, ns.Line, ns.Col, note.Msg); err != nil {
			return err
		}
		if err := writeSnippet(w, p, fs, note.Span, 0); err != nil {
			return err
		}
	}
	return nil
}

// writeSnippet prints the primary line with up to ctx preceding lines and a
// caret underline. Columns are measured in display cells so wide runes line up.
func writeSnippet(w io.Writer, p palette, fs *source.FileSet, span source.Span, ctx int8) error {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)
	if start.Line == 0 {
		return nil
	}
	first := start.Line
	if ctx > 0 {
		back := uint32(ctx)
		if back >= first {
			first = 1
		} else {
			first -= back
		}
	}
	width := len(strconv.FormatUint(uint64(start.Line), 10))

	for ln := first; ln <= start.Line; ln++ {
		text := file.GetLine(ln)
		if _, err := fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width, ln), text); err != nil {
			return err
		}
	}

	line := file.GetLine(start.Line)
	from := clampCol(start.Col, line)
	to := len(line)
	if end.Line == start.Line {
		to = max(clampCol(end.Col, line), from)
	}
	pad := padFor(line[:from])
	n := runewidth.StringWidth(line[from:to])
	if n < 1 {
		n = 1
	}
	marker := "^" + strings.Repeat("~", n-1)
	_, err := fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), pad, p.caret.Sprint(marker))
	return err
}

func clampCol(col uint32, line string) int {
	if col == 0 {
		return 0
	}
	c := int(col - 1)
	if c > len(line) {
		return len(line)
	}
	return c
}

// padFor keeps tabs so the caret stays aligned with the echoed line.
func padFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
