package lexer

import (
	"testing"

	"quill/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.ql", []byte(content)))
}

// "a\nb" → a, \n, b, EOF
func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(createFile("a\nb"))

	if c.Bump() != 'a' || c.Line != 1 || c.Col != 2 {
		t.Fatalf("after 'a': line=%d col=%d", c.Line, c.Col)
	}
	if c.Bump() != '\n' || c.Line != 2 || c.Col != 1 {
		t.Fatalf("after newline: line=%d col=%d", c.Line, c.Col)
	}
	if c.Bump() != 'b' || !c.EOF() {
		t.Fatal("expected EOF after 'b'")
	}
	if c.Bump() != 0 || c.Peek() != 0 {
		t.Fatal("reads past EOF must yield 0")
	}
}

func TestCursorMarkSpan(t *testing.T) {
	c := NewCursor(createFile("hello world"))
	c.Bump()
	m := c.Mark()
	for range 4 {
		c.Bump()
	}
	sp := c.SpanFrom(m)
	if sp.Start != 1 || sp.End != 5 {
		t.Fatalf("span = %v", sp)
	}
	if m.Pos() != (source.LineCol{Line: 1, Col: 2}) {
		t.Fatalf("mark pos = %+v", m.Pos())
	}
}

func TestCursorEatAndPeek2(t *testing.T) {
	c := NewCursor(createFile("=="))
	b0, b1, ok := c.Peek2()
	if !ok || b0 != '=' || b1 != '=' {
		t.Fatal("Peek2 failed")
	}
	if !c.Eat('=') || c.Eat('x') {
		t.Fatal("Eat mismatch")
	}
	if _, _, ok := c.Peek2(); ok {
		t.Fatal("Peek2 with one byte left must fail")
	}
}
