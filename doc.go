// Command gobasic implements a tiny integer BASIC dialect: twenty-six
// single-letter variables (A-Z), numbered-line GOTO/GOSUB/RETURN, FOR/NEXT
// loops without STEP, IF/THEN, and PRINT/INPUT with ';'/',' clause
// separators.
//
// The interpreter core (token.go, scanner.go, labels.go, eval.go, vars.go,
// forstack.go, gosubstack.go, dispatch.go, stmt.go, errors.go, interp.go)
// shares a single mutable program cursor and token slot across every
// component, the way the source dialect's C implementation does: there is
// no AST and no token stream, only a cursor into the source bytes and
// whichever token was last scanned into it.
//
// See SPEC_FULL.md for the full language definition and CLI surface.
package main
