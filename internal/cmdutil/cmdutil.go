// Package cmdutil provides the logging and process-exit bookkeeping
// shared by the strview command-line tools, adapted from the exit
// status and AtExit machinery the go command itself uses.
package cmdutil

import (
	"log"
	"os"
	"sync"

	"github.com/pkg/errors"
)

var (
	exitMu     sync.Mutex
	exitStatus int
	atExitFns  []func()
)

// AtExit registers f to run when Exit is called, in registration order.
func AtExit(f func()) {
	exitMu.Lock()
	atExitFns = append(atExitFns, f)
	exitMu.Unlock()
}

// SetExitStatus records n as the process's eventual exit status, never
// lowering a status already recorded.
func SetExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

// GetExitStatus reports the status SetExitStatus has accumulated so far.
func GetExitStatus() int {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

// Exit runs every function registered with AtExit, in order, then
// terminates the process with the accumulated exit status.
func Exit() {
	exitMu.Lock()
	fns := atExitFns
	exitMu.Unlock()
	for _, f := range fns {
		f()
	}
	os.Exit(GetExitStatus())
}

// Errorf logs a non-fatal error and records exit status 1.
func Errorf(format string, args ...interface{}) {
	log.Printf(format, args...)
	SetExitStatus(1)
}

// Fatalf logs err wrapped with a call-site stack trace, then exits.
// Wrapping with errors.Wrapf (rather than fmt.Errorf) is what lets the
// command-line tools print exactly where a command failed instead of
// just the final message.
func Fatalf(err error, format string, args ...interface{}) {
	Errorf("%+v", errors.Wrapf(err, format, args...))
	Exit()
}

// ExitIfErrors exits immediately if any prior call recorded a non-zero
// status.
func ExitIfErrors() {
	if GetExitStatus() != 0 {
		Exit()
	}
}
