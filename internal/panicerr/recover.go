// Package panicerr gives gobasic's dispatch loop a single recover
// boundary: Interp.Run's only call to Recover runs the scan/dispatch
// pipeline on its own goroutine and turns an abnormal exit — a panic
// raised by a bug in an untested corner of the dialect, or a
// runtime.Goexit from a misbehaving test double — into a plain error
// instead of taking the whole process down or hanging Run forever.
package panicerr

// Recover runs f on a new goroutine and blocks until f returns, panics, or
// calls runtime.Goexit. name identifies the caller in the resulting error
// (gobasic's one call site passes "gobasic").
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}
