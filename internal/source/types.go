package source

type (
	// FileID identifies a file inside a FileSet.
	FileID uint32
	// FileFlags records how the file content was obtained.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (tests, stdin, embedding).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the content of one source unit plus its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n' bytes
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human readable position.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
