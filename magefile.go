//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "meixner"
	mainPath   = "./cmd/meixner"
	buildDir   = "bin"
)

// Default target when running plain "mage"
var Default = Build

func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		return ""
	}
	return fmt.Sprintf("-X codeberg.org/snonux/meixner/internal.Version=%s", version)
}

// Build compiles the meixner binary into ./bin
func Build() error {
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(buildDir, binaryName), mainPath)
}

// Test runs all package tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Fmt fails when gofmt would change any source file
func Fmt() error {
	out, err := sh.Output("gofmt", "-l", "magefile.go", "cmd", "internal")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet checks formatting and runs go vet over all packages
func Vet() error {
	mg.Deps(Fmt)
	return sh.RunV("go", "vet", "./...")
}

// Install installs meixner into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPath)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(buildDir)
}
