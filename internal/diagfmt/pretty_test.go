package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
)

func singleDiag(fs *source.FileSet, fileID source.FileID, start, end uint32, code diag.Code, msg string) *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(code, source.Span{File: fileID, Start: start, End: end}, msg))
	return bag
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/home/user/project/src/test.ql", []byte("let x = \"unterminated string\n"))
	bag := singleDiag(fs, fileID, 8, 28, diag.LexUnterminatedString, "unterminated string literal")

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.ql:1:9"},
		{"relative", PathModeRelative, "src/test.ql:1:9"},
		{"basename", PathModeBasename, "test.ql:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{PathMode: tt.mode, BaseDir: "/home/user/project"}
			if err := Pretty(&buf, bag, fs, opts); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected %q in:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "LEX1002", "unterminated string literal"} {
				if !strings.Contains(output, want) {
					t.Errorf("missing %q in:\n%s", want, output)
				}
			}
		})
	}
}

func TestPrettyCaretUnderline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.ql", []byte("let a = 1;\nprint a + \"x\";\n"))
	bag := singleDiag(fs, fileID, 17, 24, diag.SemaInvalidBinaryOperands, "invalid operands to '+': i32 and string")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Context: 1}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"main.ql:2:7: ERROR SEM3011: invalid operands to '+': i32 and string",
		"1 | let a = 1;",
		"2 | print a + \"x\";",
		"  |       ^~~~~~~",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Pretty output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	src := "print \"日本\" - 1;"
	fileID := fs.AddVirtual("wide.ql", []byte(src))
	// span covers `1`
	off := uint32(strings.Index(src, "1;"))
	bag := singleDiag(fs, fileID, off, off+1, diag.SemaInvalidBinaryOperands, "bad")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// "print " (6) + quotes (2) + two double-width runes (4) + " - " (3)
	caret := lines[2]
	if idx := strings.Index(caret, "^"); idx != len("  | ")+15 {
		t.Errorf("caret at %d in %q", idx, caret)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("n.ql", []byte("let x: i32 = \"s\";\n"))
	bag := diag.NewBag(4)
	d := diag.NewError(diag.SemaTypeMismatch, source.Span{File: fileID, Start: 13, End: 16},
		"cannot initialize 'x' of type i32 with a value of type string").
		WithNote(source.Span{File: fileID, Start: 7, End: 10}, "declared here")
	bag.Add(d)

	var hidden, shown bytes.Buffer
	if err := Pretty(&hidden, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(hidden.String(), "declared here") {
		t.Errorf("notes printed without ShowNotes:\n%s", hidden.String())
	}
	if err := Pretty(&shown, bag, fs, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(shown.String(), "note: n.ql:1:8: declared here") {
		t.Errorf("note missing:\n%s", shown.String())
	}
}

func TestPrettyColorToggle(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.ql", []byte("print @;\n"))
	bag := singleDiag(fs, fileID, 6, 7, diag.LexUnknownChar, "unknown character '@'")

	var plain, colored bytes.Buffer
	if err := Pretty(&plain, bag, fs, PrettyOpts{Color: false}); err != nil {
		t.Fatal(err)
	}
	if err := Pretty(&colored, bag, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escapes: %q", colored.String())
	}
}

func TestPrettyRuntime(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("r.ql", []byte("print 1 // 0;\n"))
	var buf bytes.Buffer
	span := source.Span{File: fileID, Start: 6, End: 12}
	if err := PrettyRuntime(&buf, "VM1001", "integer floor division by zero", span, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "r.ql:1:7: PANIC VM1001: integer floor division by zero\n") {
		t.Errorf("unexpected runtime output:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "^~~~~~") {
		t.Errorf("missing underline:\n%s", buf.String())
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{"": PathModeAuto, "abs": PathModeAbsolute, "relative": PathModeRelative, "basename": PathModeBasename} {
		if got, ok := ParsePathMode(in); !ok || got != want {
			t.Errorf("ParsePathMode(%q) = %v,%v", in, got, ok)
		}
	}
	if _, ok := ParsePathMode("weird"); ok {
		t.Error("unknown mode accepted")
	}
}
