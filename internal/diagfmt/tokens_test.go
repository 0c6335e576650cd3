package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"quill/internal/lexer"
	"quill/internal/source"
)

func lexAll(src string) (*source.FileSet, *lexer.Lexer) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("tok.ql", []byte(src))
	return fs, lexer.New(fs.Get(id), lexer.Options{})
}

func TestFormatTokensPretty(t *testing.T) {
	fs, lx := lexAll("let x = 1;")
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, lx.All(), fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: KwLet") || !strings.Contains(lines[0], "at 1:1-1:4") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"x"`) {
		t.Errorf("ident text missing: %q", lines[1])
	}
	if !strings.Contains(lines[5], "EOF") {
		t.Errorf("last line = %q", lines[5])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, lx := lexAll("print \"hi\";")
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, lx.All()); err != nil {
		t.Fatal(err)
	}
	var toks []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &toks); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("len = %d", len(toks))
	}
	if toks[1].Kind != "String" || toks[1].Text != "hi" || toks[1].Col != 7 {
		t.Errorf("string token = %+v", toks[1])
	}
}
