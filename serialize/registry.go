// Package serialize implements the VerifierData wire format from §6: a
// fixed, ordered gate-type registry prefix followed by the backend's own
// verifying-key bytes. The registry never changes shape once shipped —
// reordering it invalidates every previously issued VerifierData blob, so
// treat GateRegistry as a frozen schema, not a place to "clean up" names.
package serialize

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/muun/cosigning-zk/errs"
)

// GateRegistry is the stable, ordered list of gate-type tags §6 requires at
// minimum. The predicate circuit in this module is PLONK/SCS-based and
// does not itself emit most of these gate kinds (they're a legacy of the
// plonky2 original's gate set), but the registry is kept verbatim as the
// compatibility schema downstream verifiers pin against.
var GateRegistry = []string{
	"arithmetic",
	"arithmetic_extension",
	"base_sum_2",
	"base_sum_4",
	"constant",
	"coset_interpolation",
	"exponentiation",
	"lookup",
	"lookup_table",
	"mul_extension",
	"noop",
	"poseidon",
	"poseidon_mds",
	"public_input",
	"random_access",
	"reducing",
	"reducing_extension",
	"comparison",
	"u32_add_many",
	"u32_arithmetic",
	"u32_range_check",
	"u32_subtraction",
}

const magic = "COSZKv1\x00"

// WriteRegistry writes the magic header and the registry entries
// (length-prefixed ASCII strings), the fixed prefix every VerifierData blob
// carries ahead of the backend-specific verifying-key bytes.
func WriteRegistry(w io.Writer) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(GateRegistry))); err != nil {
		return err
	}
	for _, tag := range GateRegistry {
		if err := binary.Write(w, binary.BigEndian, uint32(len(tag))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, tag); err != nil {
			return err
		}
	}
	return nil
}

// ReadAndCheckRegistry reads the header from r and asserts it matches
// GateRegistry exactly, returning the remaining bytes as the backend
// payload. A mismatched or truncated header is a SerializationError — the
// blob is from an incompatible gate registry or not a VerifierData blob at
// all.
func ReadAndCheckRegistry(data []byte) (payload []byte, err error) {
	r := bytes.NewReader(data)
	magicBuf := make([]byte, len(magic))
	if _, err := io.ReadFull(r, magicBuf); err != nil {
		return nil, errs.Serializationf("truncated magic: %v", err)
	}
	if string(magicBuf) != magic {
		return nil, errs.Serializationf("bad magic %q", magicBuf)
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, errs.Serializationf("truncated registry length: %v", err)
	}
	if int(n) != len(GateRegistry) {
		return nil, errs.Serializationf("registry length mismatch: got %d want %d", n, len(GateRegistry))
	}
	for i := 0; i < int(n); i++ {
		var l uint32
		if err := binary.Read(r, binary.BigEndian, &l); err != nil {
			return nil, errs.Serializationf("truncated registry entry %d: %v", i, err)
		}
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errs.Serializationf("truncated registry entry %d body: %v", i, err)
		}
		if string(buf) != GateRegistry[i] {
			return nil, errs.Serializationf("registry entry %d mismatch: got %q want %q", i, buf, GateRegistry[i])
		}
	}
	rest := make([]byte, r.Len())
	io.ReadFull(r, rest)
	return rest, nil
}
