package main

import "context"

// run is the Statement Dispatcher (spec §4.7): the top-level loop. It reads
// the current token and routes to the matching statement handler, handling
// implicit LET on a bare VARIABLE token. END sets stop; reaching kind END
// via source exhaustion ends the run the same way.
func (ip *Interp) run(ctx context.Context) {
	for !ip.stopped() {
		if err := ctx.Err(); err != nil {
			ip.halt(err)
		}

		if ip.logfn != nil {
			ip.logf("@", "%v %q", ip.tok.kind, ip.tok.text)
		}

		switch ip.tok.kind {
		case tokVariable:
			ip.doAssign() // implicit LET: the handler reads the VARIABLE already in the slot

		case tokPrint:
			ip.scan()
			ip.doPrint()
		case tokInput:
			ip.scan()
			ip.doInput()
		case tokIf:
			ip.scan()
			ip.doIf()
		case tokGoto:
			ip.scan()
			ip.doGoto()
		case tokGosub:
			ip.scan()
			ip.doGosub()
		case tokReturn:
			ip.scan()
			ip.doReturn()
		case tokFor:
			ip.scan()
			ip.doFor()
		case tokNext:
			ip.scan()
			ip.doNext()
		case tokLet:
			ip.scan()
			ip.doAssign()
		case tokEnd:
			ip.stop = true

		default:
			// Defensive no-op: an unexpected token (stray delimiter, EOL
			// between statements) is simply consumed.
			ip.scan()
		}
	}
}
