package main

import "fmt"

// logging provides the interpreter's optional trace facility: when logfn
// is set (via WithLogf), the dispatcher logs one line per dispatched
// token under the "@" mark, and serror logs the error's sentinel under
// "#" alongside the "ERROR: ..." line written to output. Unlike the
// teacher's VM step logger — which right-pads its mark to line up
// several distinct multi-character op names in a column — gobasic only
// ever logs these two single-character marks, so there's no column to
// align and no width state to track.
type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
