// Package types holds the configuration type shared by the cosign-setup
// CLI, parsed from environment variables with command-line overrides in
// the same style the original relayer tooling used for its own config.
package types

import (
	"fmt"
	"os"
)

// Config holds cosign-setup's configuration: where to write the compiled
// circuit artifacts, and how to obtain the KZG SRS PLONK setup needs.
type Config struct {
	RootDir string

	// SRSPath, when non-empty, is a canonical KZG ceremony transcript to
	// load. When empty, InsecureTestSRS must be true.
	SRSPath string

	// InsecureTestSRS derives the SRS from a throwaway random secret
	// instead of loading a ceremony transcript. Development only.
	InsecureTestSRS bool
}

// NewConfig parses configuration from environment variables, then applies
// command-line argument overrides.
func NewConfig(args ...string) *Config {
	config := Config{
		RootDir:         getEnv("ROOT", "."),
		SRSPath:         getEnv("SRS_PATH", ""),
		InsecureTestSRS: getEnv("INSECURE_TEST_SRS", "") != "",
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root":
			requireArg(args, i)
			config.RootDir = args[i+1]
			i++
		case "--srs":
			requireArg(args, i)
			config.SRSPath = args[i+1]
			i++
		case "--insecure-test-srs":
			config.InsecureTestSRS = true
		}
	}

	return &config
}

func requireArg(args []string, i int) {
	if len(args) <= i+1 {
		panic(fmt.Errorf("missing argument for %s", args[i]))
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
