package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single script file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Text returns the normalised content as a string.
func (f *File) Text() string {
	return string(f.Content)
}

// LineCount matches the tokenizer's notion of lines: the number of
// '\n'-separated segments, so an empty file still has one line.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}
