package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gobasic/internal/flushio"
	"github.com/jcorbin/gobasic/internal/panicerr"
	"github.com/jcorbin/gobasic/internal/runeio"
)

// maxSourceLen bounds the source buffer per spec §5 ("source ≤ 64,000 bytes").
const maxSourceLen = 64000

// Interp is the interpreter core (spec §1, §3): the program cursor, the
// shared token slot, the 26-cell variable store, the label index, the
// FOR/GOSUB stacks and the sticky stop flag that every component checks at
// its own entry points. All of it is process-wide, mutated in place by
// whichever component is running — there is exactly one cursor and exactly
// one token slot, by design (spec §9).
type Interp struct {
	logging

	source []byte
	cur    int
	tok    token

	vars       [26]int
	labels     []label
	forStack   []forFrame
	gosubStack []int

	stop bool
	err  error

	out flushio.WriteFlusher
	in  *bufio.Reader

	sourceLimit int
}

// New builds an Interp from functional options, mirroring the teacher's
// `New(opts ...VMOption) *VM` constructor.
func New(opts ...Option) *Interp {
	ip := &Interp{
		out: flushio.NewWriteFlusher(io.Discard),
		in:  bufio.NewReader(strings.NewReader("")),
	}
	for _, opt := range opts {
		opt.apply(ip)
	}
	return ip
}

// haltError wraps a fatal, non-BASIC-level error raised through halt: an
// output or input failure, or a context cancellation. It is distinct from the sticky per-program errors
// serror reports (those print "ERROR: ..." to stdout and leave Run
// returning nil, per spec §7's "process exit status is 0 even after a
// reported error").
type haltError struct{ error }

func (e haltError) Error() string {
	if e.error != nil {
		return fmt.Sprintf("halted: %v", e.error)
	}
	return "halted"
}
func (e haltError) Unwrap() error { return e.error }

// halt aborts the run immediately via panic, unwound by Run's
// panicerr.Recover boundary. Used only for conditions the BASIC dialect
// itself has no error code for (i/o failure, context cancellation) — ordinary
// BASIC-level failures go through serror instead.
func (ip *Interp) halt(err error) {
	ip.out.Flush() //nolint:errcheck // best-effort before panicking
	panic(haltError{err})
}

// Run loads source (appending the sentinel NUL if not already present),
// builds the Label Index, and runs the Statement Dispatcher to completion
// or to the first reported error. It is the core's single "run to
// completion or error" entry point (spec §1).
//
// The returned error is non-nil only for a fatal condition outside the
// BASIC dialect's own error vocabulary (a resource limit, a context
// cancellation, an internal panic) — a reported BASIC-level error (an
// "ERROR: ..." line already written to output) is not itself a Go error;
// inspect LastError for it.
func (ip *Interp) Run(ctx context.Context, source []byte) error {
	if limit := ip.sourceLimit; limit == 0 || limit > maxSourceLen {
		limit = maxSourceLen
		ip.sourceLimit = limit
	}
	if len(source) > ip.sourceLimit {
		return fmt.Errorf("source length %v exceeds limit %v", len(source), ip.sourceLimit)
	}

	ip.source = source
	if len(ip.source) == 0 || ip.source[len(ip.source)-1] != 0 {
		ip.source = append(append([]byte(nil), source...), 0)
	}
	ip.cur, ip.tok = 0, token{}
	ip.vars = [26]int{}
	ip.labels, ip.forStack, ip.gosubStack = nil, nil, nil
	ip.stop, ip.err = false, nil

	err := panicerr.Recover("gobasic", func() error {
		ip.scanLabels()
		ip.cur = 0
		ip.scan()
		ip.run(ctx)
		return nil
	})

	if ferr := ip.out.Flush(); err == nil {
		err = ferr
	}
	if err == nil || panicerr.IsExit(err) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		return he.error
	}
	return err
}

// LastError returns the sentinel error of the first BASIC-level failure
// reported by serror during the most recent Run, or nil if the program
// completed cleanly.
func (ip *Interp) LastError() error { return ip.err }

func (ip *Interp) writeString(s string) {
	if _, err := runeio.WriteString(ip.out, s); err != nil {
		ip.halt(err)
	}
}

// readInt reads one decimal integer (optionally signed) from the INPUT
// stream, flushing pending output first so a prompt is visible before it
// blocks. Non-digit input is treated as zero, matching scanf("%d")'s
// lenient-on-garbage behavior closely enough for a dialect with no error
// path for malformed INPUT.
func (ip *Interp) readInt() int {
	if err := ip.out.Flush(); err != nil {
		ip.halt(err)
	}

	for {
		b, err := ip.in.Peek(1)
		if err != nil {
			return 0
		}
		if b[0] == ' ' || b[0] == '\t' || b[0] == '\n' || b[0] == '\r' {
			ip.in.ReadByte() //nolint:errcheck
			continue
		}
		break
	}

	neg := false
	if b, err := ip.in.Peek(1); err == nil && (b[0] == '-' || b[0] == '+') {
		neg = b[0] == '-'
		ip.in.ReadByte() //nolint:errcheck
	}

	n := 0
	for {
		b, err := ip.in.Peek(1)
		if err != nil || b[0] < '0' || b[0] > '9' {
			break
		}
		n = n*10 + int(b[0]-'0')
		ip.in.ReadByte() //nolint:errcheck
	}
	if neg {
		n = -n
	}
	return n
}
