// cosign-setup compiles the cosigning predicate circuit and runs the PLONK
// trusted setup once, writing the fixed ProverData/VerifierData artifacts
// to .build/ — the Go counterpart of the original implementation's
// generate binary (libwallet/librs/generate/src/main.rs), which produced
// the single verifier-data blob every wallet build ships.
package main

import (
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/logger"

	"github.com/muun/cosigning-zk/circuits/cosigning"
	"github.com/muun/cosigning-zk/prover"
	"github.com/muun/cosigning-zk/provers/types"
)

func main() {
	cfg := types.NewConfig(os.Args[1:]...)

	logger.Disable()

	ccsPath := filepath.Join(cfg.RootDir, ".build/cosigning.ccs")
	pkPath := filepath.Join(cfg.RootDir, ".build/cosigning.pk")
	vkPath := filepath.Join(cfg.RootDir, ".build/cosigning.vk")

	if err := os.MkdirAll(filepath.Join(cfg.RootDir, ".build"), 0o755); err != nil {
		println("error", err.Error())
		os.Exit(1)
	}

	println("compiling cosigning circuit...")
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &cosigning.Circuit{})
	if err != nil {
		println("error", err.Error())
		os.Exit(1)
	}
	println("constraints:", ccs.GetNbConstraints(), "public inputs:", ccs.GetNbPublicVariables())

	fccs, err := os.Create(ccsPath)
	if err != nil {
		println("error", err.Error())
		os.Exit(1)
	}
	defer fccs.Close()
	if _, err := ccs.WriteTo(fccs); err != nil {
		println("error", err.Error())
		os.Exit(1)
	}

	var pd *prover.ProverData
	var vd *prover.VerifierData

	switch {
	case cfg.InsecureTestSRS:
		println("deriving insecure test SRS (development only)...")
		srs, srsLagrange, serr := prover.NewInsecureTestSRS()
		if serr != nil {
			println("error", serr.Error())
			os.Exit(1)
		}
		pd, vd, err = prover.Precompute(srs, srsLagrange)
	case cfg.SRSPath != "":
		println("loading SRS from", cfg.SRSPath, "...")
		srs, srsLagrange, serr := prover.LoadSRS(cfg.SRSPath, ccs)
		if serr != nil {
			println("error", serr.Error())
			os.Exit(1)
		}
		pd, vd, err = prover.Precompute(srs, srsLagrange)
	default:
		println("error: must pass either --srs <path> or --insecure-test-srs")
		os.Exit(1)
	}
	if err != nil {
		println("error", err.Error())
		os.Exit(1)
	}

	println("writing proving key to", pkPath, "...")
	fpk, err := os.Create(pkPath)
	if err != nil {
		println("error", err.Error())
		os.Exit(1)
	}
	defer fpk.Close()
	if _, err := pd.PK.WriteTo(fpk); err != nil {
		println("error", err.Error())
		os.Exit(1)
	}

	println("writing verifying key to", vkPath, "...")
	blob, err := prover.SerializeVerifierData(vd)
	if err != nil {
		println("error", err.Error())
		os.Exit(1)
	}
	if err := os.WriteFile(vkPath, blob, 0o644); err != nil {
		println("error", err.Error())
		os.Exit(1)
	}

	println("setup complete")
}
