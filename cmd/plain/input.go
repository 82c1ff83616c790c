package main

import (
	"fmt"
	"io"
	"os"
)

// readInput reads a named file, or standard input for "-".
func readInput(in io.Reader, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
