//go:build mage

// Package main contains Mage build targets for developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "hunter"
	cmdPkg  = "./cmd/hunter"
)

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}

	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := fmt.Sprintf("-X github.com/obaidrock78/hunter-io-client/cmd/hunter/commands.version=%s", version)

	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs the unit tests with coverage and writes coverage.out.
func Cover() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Integration runs the live API tests. Requires HUNTER_API_KEY.
func Integration() error {
	return sh.RunV("go", "test", "-tags", "integration", "-v", "./integration/...")
}

// Lint runs go vet over the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// All builds the binary and runs the unit tests.
func All() {
	mg.SerialDeps(Lint, Test, Build)
}

// Clean removes build artifacts.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}
