//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI binary with the given arguments.
func run(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Analyze builds the CLI and analyzes the datasheets under data/ into a
// project file. See prd004-analysis for full requirements.
func Analyze() error {
	mg.Deps(Build)
	return run("analyze")
}

// Index builds the CLI and ingests analyzed projects into the component
// index. See prd006-component-store for full requirements.
func Index() error {
	mg.Deps(Build)
	return run("store", "ingest")
}
