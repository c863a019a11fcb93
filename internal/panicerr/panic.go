package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// recoverPanic is deferred ahead of recoverExit so it observes the panic
// first; a normal return or a runtime.Goexit leaves recover() nil here and
// this is a no-op.
func recoverPanic(name string, errch chan<- error) {
	cause := recover()
	if cause == nil {
		return
	}
	err := &PanicError{Name: name, Cause: cause, Stack: debug.Stack()}
	select {
	case errch <- err:
	default:
	}
}

// PanicError is what Recover reports when f panics instead of returning.
type PanicError struct {
	Name  string
	Cause interface{}
	Stack []byte
}

func (pe *PanicError) Error() string {
	if pe.Name == "" {
		return fmt.Sprintf("paniced: %v", pe.Cause)
	}
	return fmt.Sprintf("%v paniced: %v", pe.Name, pe.Cause)
}

func (pe *PanicError) Unwrap() error {
	err, _ := pe.Cause.(error)
	return err
}

// PanicStack returns the stack captured at the point of a recovered panic,
// or "" if err is not a *PanicError. gobasic's CLI driver logs this under
// --trace so a crash report includes where the panic actually happened.
func PanicStack(err error) string {
	var pe *PanicError
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
