package main

import (
	"bufio"
	"io"

	"github.com/jcorbin/gobasic/internal/flushio"
)

// Option configures an Interp at construction time, mirroring the teacher's
// functional-option constructor pattern.
type Option interface{ apply(ip *Interp) }

// WithOutput sets the stream PRINT and the INPUT prompt write to. Defaults
// to io.Discard.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithInput sets the stream INPUT reads decimal integers from. Defaults to
// an empty reader.
func WithInput(r io.Reader) Option { return inputOption{r} }

// WithLogf enables trace logging: one line per dispatched token, plus any
// reported error.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfOption(logfn) }

// WithSourceLimit lowers the 64,000-byte source length bound (spec §5).
// Run clamps a limit above 64,000 to 64,000, and a limit <= 0 is ignored.
func WithSourceLimit(limit int) Option { return sourceLimitOption(limit) }

type outputOption struct{ io.Writer }
type inputOption struct{ io.Reader }
type logfOption func(mess string, args ...interface{})
type sourceLimitOption int

func (o outputOption) apply(ip *Interp) { ip.out = flushio.NewWriteFlusher(o.Writer) }
func (o inputOption) apply(ip *Interp)  { ip.in = bufio.NewReader(o.Reader) }
func (o logfOption) apply(ip *Interp)   { ip.logfn = o }
func (o sourceLimitOption) apply(ip *Interp) {
	if o > 0 {
		ip.sourceLimit = int(o)
	}
}
