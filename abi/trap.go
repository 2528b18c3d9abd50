// Package abi is the C-ABI-style boundary the spec calls for (§4.12/§7): a
// panic trap around prove/verify that never lets a Go panic cross into a
// foreign caller, returning one of three byte-blob markers instead.
package abi

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/muun/cosigning-zk/errs"
)

// silencedLogger discards everything; Trap installs it for the duration of
// the wrapped call so a panicking backend can't spew a stack trace or
// internal state across the FFI boundary, per §7's "silencing logs"
// requirement.
var silencedLogger = zerolog.Nop()

// trapMu serializes the swap of zerolog's package-level DefaultContextLogger:
// it is process-global, so two Trap calls racing on it (one restoring the
// caller's logger while another still expects it silenced) is a real data
// race, not just a cosmetic one. ProverData/VerifierData are designed to be
// read concurrently by any number of Prove/Verify callers (§5), so Trap must
// hold this for fn()'s entire duration rather than only around the swap.
var trapMu sync.Mutex

// Trap runs fn with logging silenced and converts a panic into the
// "panic: <message>" marker instead of letting it propagate, so a foreign
// caller on the other side of an FFI boundary never observes a Go panic.
func Trap(fn func() ([]byte, error)) (out []byte) {
	trapMu.Lock()
	defer trapMu.Unlock()

	prev := zerolog.DefaultContextLogger
	zerolog.DefaultContextLogger = &silencedLogger
	defer func() { zerolog.DefaultContextLogger = prev }()

	defer func() {
		if r := recover(); r != nil {
			out = []byte(fmt.Sprintf("panic: %v", errs.FromPanic(r)))
		}
	}()

	result, err := fn()
	if err != nil {
		return []byte(fmt.Sprintf("error: %v", err))
	}
	return append([]byte("ok"), result...)
}
