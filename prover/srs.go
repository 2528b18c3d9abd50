package prover

import (
	"fmt"
	"os"

	gkzg "github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/constraint"
)

// LoadSRS reads a canonical BN254 KZG ceremony transcript (gnark's own
// serialized format, e.g. a converted Hermez/Polygon Powers of Tau) from
// path and derives the Lagrange-basis SRS Precompute's PLONK setup also
// needs, sized to ccs's domain. It does not fetch anything over the
// network — converting or downloading a ceremony file is an operational
// concern outside this module's scope (§1 Non-goals carry the same "no
// network access" stance onto setup tooling).
func LoadSRS(path string, ccs constraint.ConstraintSystem) (srs, srsLagrange kzg.SRS, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open SRS file: %w", err)
	}
	defer f.Close()

	var canon gkzg.SRS
	if _, err := canon.ReadFrom(f); err != nil {
		return nil, nil, fmt.Errorf("read SRS: %w", err)
	}

	lagrangeSize := nextPowerOfTwo(ccs.GetNbConstraints())
	if lagrangeSize+1 > len(canon.Pk.G1) {
		return nil, nil, fmt.Errorf("SRS too small: have %d G1 points, need %d for %d constraints",
			len(canon.Pk.G1), lagrangeSize+1, ccs.GetNbConstraints())
	}

	lagrangeG1, err := gkzg.ToLagrangeG1(canon.Pk.G1[:lagrangeSize+1])
	if err != nil {
		return nil, nil, fmt.Errorf("derive Lagrange SRS: %w", err)
	}

	lagrange := gkzg.SRS{
		Pk: gkzg.ProvingKey{G1: lagrangeG1},
		Vk: canon.Vk,
	}

	return &canon, &lagrange, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
