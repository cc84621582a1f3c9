package pw

import (
	"fmt"
	"sync/atomic"
	"syscall"
)

// loopTID is the OS thread that owns the loop, captured by Init.
// Zero means Init has not run.
var loopTID atomic.Int64

func markLoopThread() {
	loopTID.Store(int64(syscall.Gettid()))
}

// assertLoopThread aborts the operation when invoked off the owning
// thread. Registrations and callback delivery are affine to the thread
// that called Init; violating that is a programming-contract violation,
// not a recoverable condition.
func assertLoopThread(op string) {
	owner := loopTID.Load()
	if owner == 0 {
		panic(fmt.Sprintf("pw: %s called before Init", op))
	}
	if tid := int64(syscall.Gettid()); tid != owner {
		panic(fmt.Sprintf("pw: %s called from thread %d, loop is owned by thread %d", op, tid, owner))
	}
}
