package panicerr

import (
	"errors"
	"fmt"
)

// recoverExit runs after recoverPanic on the defer stack, so it only fires
// when f neither returned normally (which already sent on errch) nor
// panicked (which recoverPanic already reported): the remaining case is f
// calling runtime.Goexit, which skips the rest of f including its own
// send on errch.
func recoverExit(name string, errch chan<- error) {
	select {
	case errch <- goexitError(name):
	default:
		// f already sent (possibly nil); nothing to report
	}
}

type goexitError string

func (name goexitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsExit returns true if err indicates Recover's f called runtime.Goexit
// instead of returning.
func IsExit(err error) bool {
	var ge goexitError
	return errors.As(err, &ge)
}
