// Package fileinput loads a whole BASIC source file into memory and keeps
// enough bookkeeping to turn a byte offset back into a human "file:line"
// location for diagnostics.
package fileinput

import (
	"fmt"
	"os"
)

// Location names a line in a loaded file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Source is a fully loaded program: its name, its text (sentinel-terminated
// per the data model's "immutable byte sequence terminated by a sentinel
// zero"), and the offset of the start of each line for LocationAt.
type Source struct {
	Name      string
	Text      []byte
	lineStart []int
}

// Load reads the named file in full, appends the sentinel NUL the scanner
// relies on to detect end-of-program, and indexes line starts for later
// diagnostics.
func Load(name string) (Source, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Source{}, fmt.Errorf("loading %v: %w", name, err)
	}

	src := Source{Name: name, Text: append(data, 0), lineStart: []int{0}}
	for i, b := range data {
		if b == '\n' {
			src.lineStart = append(src.lineStart, i+1)
		}
	}
	return src, nil
}

// LocationAt returns the file:line location of a byte offset into Text.
func (src Source) LocationAt(offset int) Location {
	line := 1
	for i, start := range src.lineStart {
		if start > offset {
			break
		}
		line = i + 1
	}
	return Location{Name: src.Name, Line: line}
}
