package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the latin_phrases binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "latin_phrases"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/latin_phrases ./cmd/latin_phrases'", binaryPath)
	}

	return binaryPath
}
