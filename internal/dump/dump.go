// Package dump pretty-prints interpreter state for the --dump CLI flag,
// adapted from the teacher's vmDumper to this dialect's flat variable store
// and label/FOR/GOSUB tables.
package dump

import (
	"io"

	"github.com/k0kubun/pp/v3"
)

// ForFrame is a snapshot of one FOR-loop stack frame.
type ForFrame struct {
	Var        string
	Target     int
	BodyOffset int
}

// State is a snapshot of everything worth inspecting after a run: the
// variable store (zero-valued cells omitted), the label index, the FOR and
// GOSUB stacks, the final cursor position and the last reported error, if
// any.
type State struct {
	Cursor     int
	Vars       map[string]int
	Labels     map[string]int
	ForStack   []ForFrame
	GosubStack []int
	LastError  error
}

// Dump writes a human-readable rendering of State to w.
func Dump(w io.Writer, s State) {
	printer := pp.New()
	printer.SetOutput(w)
	printer.Println("# Interpreter Dump")
	printer.Printf("cursor: %v\n", s.Cursor)
	printer.Printf("vars: %v\n", printer.Sprint(s.Vars))
	printer.Printf("labels: %v\n", printer.Sprint(s.Labels))
	printer.Printf("for stack: %v\n", printer.Sprint(s.ForStack))
	printer.Printf("gosub stack: %v\n", printer.Sprint(s.GosubStack))
	if s.LastError != nil {
		printer.Printf("last error: %v\n", s.LastError)
	}
}
