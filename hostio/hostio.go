// Package hostio provides the host file and process surface for generated
// code. Failures are surfaced as typed errors rather than swallowed, so a
// generated program can report a missing input file instead of silently
// reading an empty string.
package hostio

import (
	"fmt"
	"os"

	"github.com/HomunMage/homun-std/errors"
)

// ReadFile returns the contents of the file at path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.IO(path, err)
	}
	return string(data), nil
}

// WriteFile writes content to the file at path, creating it if needed.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.IO(path, err)
	}
	return nil
}

// Eprint writes msg and a newline to standard error.
func Eprint(msg any) {
	fmt.Fprintln(os.Stderr, msg)
}

// Args returns the process arguments, including the program name.
func Args() []string {
	return os.Args
}
