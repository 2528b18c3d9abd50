package abi_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/muun/cosigning-zk/abi"
)

func TestTrap_OkMarker(t *testing.T) {
	out := abi.Trap(func() ([]byte, error) {
		return []byte("payload"), nil
	})
	if !bytes.Equal(out, []byte("okpayload")) {
		t.Fatalf("got %q, want %q", out, "okpayload")
	}
}

func TestTrap_ErrorMarker(t *testing.T) {
	out := abi.Trap(func() ([]byte, error) {
		return nil, errors.New("boom")
	})
	if !strings.HasPrefix(string(out), "error: boom") {
		t.Fatalf("got %q, want prefix %q", out, "error: boom")
	}
}

func TestTrap_PanicMarker(t *testing.T) {
	out := abi.Trap(func() ([]byte, error) {
		panic("kaboom")
	})
	if !strings.HasPrefix(string(out), "panic:") {
		t.Fatalf("got %q, want prefix %q", out, "panic:")
	}
	if !strings.Contains(string(out), "kaboom") {
		t.Fatalf("got %q, expected it to mention the panic value", out)
	}
}

func TestTrap_PanicWithErrorValue(t *testing.T) {
	out := abi.Trap(func() ([]byte, error) {
		panic(errors.New("structured panic"))
	})
	if !strings.HasPrefix(string(out), "panic:") {
		t.Fatalf("got %q, want prefix %q", out, "panic:")
	}
}

// TestTrap_ConcurrentCalls exercises Trap from many goroutines at once, the
// usage pattern §5 implies by requiring ProverData/VerifierData to support
// concurrent callers. Run with -race to catch a regression of the swap on
// zerolog's package-level DefaultContextLogger.
func TestTrap_ConcurrentCalls(t *testing.T) {
	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			var out []byte
			if i%2 == 0 {
				out = abi.Trap(func() ([]byte, error) {
					return []byte("payload"), nil
				})
				if !bytes.Equal(out, []byte("okpayload")) {
					t.Errorf("got %q, want %q", out, "okpayload")
				}
				return
			}
			out = abi.Trap(func() ([]byte, error) {
				panic("kaboom")
			})
			if !strings.HasPrefix(string(out), "panic:") {
				t.Errorf("got %q, want prefix %q", out, "panic:")
			}
		}()
	}
	wg.Wait()
}
