package mdffi

import (
	"fmt"
	"os"
	"path/filepath"
)

// readFixture returns the contents of a file under testdata/.
func readFixture(name string) ([]byte, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// #nosec G304 -- test fixture reads from controlled test data directory
	data, err := os.ReadFile(filepath.Join(wd, "testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	return data, nil
}

// writeFixtureToFile copies a testdata fixture into dir under filename.
// Returns the file path and any error encountered.
func writeFixtureToFile(dir, fixture, filename string) (string, error) {
	data, err := readFixture(fixture)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write fixture file: %w", err)
	}

	return path, nil
}
