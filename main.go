// Command gobasic runs a tiny integer BASIC dialect program loaded from a
// file: variables A-Z, GOTO/GOSUB/RETURN, FOR/NEXT, IF/THEN and PRINT/INPUT
// (spec §1). See SPEC_FULL.md for the full language and CLI surface.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/jcorbin/gobasic/internal/dump"
	"github.com/jcorbin/gobasic/internal/fileinput"
	"github.com/jcorbin/gobasic/internal/logio"
	"github.com/jcorbin/gobasic/internal/panicerr"
)

type cliOptions struct {
	Trace       bool          `long:"trace" description:"enable trace logging of each dispatched token"`
	Timeout     time.Duration `long:"timeout" description:"abort the run after this duration"`
	Dump        bool          `long:"dump" description:"print interpreter state after execution"`
	MemLimit    int           `long:"mem-limit" description:"lower the 64000-byte source size limit (larger values are clamped to it)"`

	Args struct {
		Program string `positional-arg-name:"program.bas" required:"true"`
	} `positional-args:"yes"`
}

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)

	args, err := parser.Parse()
	if err != nil && flags.WroteHelp(err) {
		os.Exit(0)
	}
	if err != nil || len(args) != 0 {
		fmt.Fprintf(os.Stderr, "Usage: %v filename.bas\n", parser.Name)
		os.Exit(1)
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	src, err := fileinput.Load(opts.Args.Program)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	interpOpts := []Option{
		WithOutput(os.Stdout),
		WithInput(os.Stdin),
		WithSourceLimit(opts.MemLimit),
	}
	if opts.Trace {
		interpOpts = append(interpOpts, WithLogf(log.Leveledf("TRACE")))
	}
	ip := New(interpOpts...)

	if opts.Dump {
		defer func() { dump.Dump(os.Stderr, dumpState(ip)) }()
	}

	ctx := context.Background()
	if opts.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	if err := ip.Run(ctx, src.Text); err != nil {
		if opts.Trace {
			if stack := panicerr.PanicStack(err); stack != "" {
				log.Leveledf("TRACE")("recovered panic stack:\n%s", stack)
			}
		}
		log.Errorf("%v", err)
		return
	}
	if err := ip.LastError(); err != nil {
		log.Leveledf("BASIC")("%v", err)
	}
}

// dumpState snapshots the interpreter's mutable state for --dump. It lives
// here rather than in the dump package since it must reach into Interp's
// unexported fields.
func dumpState(ip *Interp) dump.State {
	vars := make(map[string]int, 26)
	for i, v := range ip.vars {
		if v != 0 {
			vars[string(rune('A'+i))] = v
		}
	}

	labels := make(map[string]int, len(ip.labels))
	for _, l := range ip.labels {
		labels[l.text] = l.offset
	}

	forFrames := make([]dump.ForFrame, len(ip.forStack))
	for i, f := range ip.forStack {
		forFrames[i] = dump.ForFrame{Var: f.varName, Target: f.target, BodyOffset: f.bodyOffset}
	}

	return dump.State{
		Cursor:     ip.cur,
		Vars:       vars,
		Labels:     labels,
		ForStack:   forFrames,
		GosubStack: append([]int(nil), ip.gosubStack...),
		LastError:  ip.LastError(),
	}
}
