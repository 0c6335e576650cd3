package fuzztests

import (
	"path/filepath"
	"testing"

	"quill/internal/testkit"
)

const maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса

var builtinSeeds = []string{
	"",
	"let x = 5;\nprint x;\n",
	"print \"hello\"[1:3];",
	"print \"Hi\" * 3;",
	"let l: list[list[f32]] = [[1.5], []];\nprint l;",
	"print -(1 + 2) * 3 // 2 % 5 >= 1 && !0 || 1 != 2;",
	"print \"a-b\".replace(\"-\" + \"+\").upper().len();",
	"let s = \"x\nprint s;",
	"print 99999999999;",
	"print (((1;",
	"let = ;",
	"# comment\nprint 1; # trailing\n",
	"print s[;",
	"print \"\\t\\\"\\\\\";",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	// golden-кейсы из testdata как дополнительный корпус
	cases, err := testkit.LoadCases(filepath.Join("..", "..", "testdata", "golden"))
	if err != nil {
		return
	}
	for _, c := range cases {
		f.Add(clampSeed([]byte(c.Source)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
