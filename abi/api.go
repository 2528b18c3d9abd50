package abi

import (
	"fmt"

	"github.com/muun/cosigning-zk/prover"
)

// ProveABI is the Trap-wrapped entry point a foreign caller invokes to
// produce a compressed proof. e32/p32 are 32-byte big-endian scalars; e,
// r, p are 65-byte SEC1-uncompressed points; ct is 48 bytes.
func ProveABI(pd *prover.ProverData, e32, p32, e, r, p, ct []byte) []byte {
	return Trap(func() ([]byte, error) {
		proof, err := prover.Prove(pd, prover.ProveInputs{
			Inputs: prover.Inputs{E: e, R: r, P: p, CT: ct},
			E32:    e32,
			P32:    p32,
		})
		if err != nil {
			return nil, err
		}
		return proof.Bytes, nil
	})
}

// VerifyABI is the Trap-wrapped entry point a foreign caller invokes to
// check a compressed proof against the public statement (E,R,P,CT). It
// returns the "ok"/"error: ..."/"panic: ..." marker blob with no payload
// after "ok" on success.
func VerifyABI(vd *prover.VerifierData, proofBytes, e, r, p, ct []byte) []byte {
	return Trap(func() ([]byte, error) {
		err := prover.Verify(vd, &prover.Proof{Bytes: proofBytes}, prover.Inputs{E: e, R: r, P: p, CT: ct})
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return nil, nil
	})
}
