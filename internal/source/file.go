package source

import (
	"crypto/sha256"
	"os"
	"strings"
)

// File holds the normalized content of a single document together with its
// line index. The index maps line numbers to content offsets so per-line
// access stays O(1) after construction.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n' in Content
	Hash    [32]byte
	Flags   FileFlags
}

// NewFile builds a File from normalized bytes. The path is cleaned into the
// canonical slash form used as the document identity everywhere else.
func NewFile(path string, content []byte, flags FileFlags) *File {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return &File{
		Path:    NormalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// Load reads a file from disk, normalizing CRLF and BOM.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFile(path, content, 0), nil
}

// NewVirtual builds a File from an in-memory buffer (editor overlay or test).
func NewVirtual(path, content string) *File {
	return NewFile(path, []byte(content), FileVirtual)
}

// LineCount returns the number of lines. An empty file has one empty line,
// matching how editors address positions.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

// Line returns the text of the 0-based line n without its trailing newline.
// Out-of-range lines yield an empty string.
func (f *File) Line(n int) string {
	if f == nil || n < 0 || n >= f.LineCount() {
		return ""
	}
	var start uint32
	if n > 0 {
		start = f.LineIdx[n-1] + 1
	}
	end := uint32(len(f.Content))
	if n < len(f.LineIdx) {
		end = f.LineIdx[n]
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// Lines splits the content into its lines, one entry per line.
func (f *File) Lines() []string {
	if f == nil {
		return nil
	}
	if len(f.Content) == 0 {
		return []string{""}
	}
	return strings.Split(string(f.Content), "\n")
}
