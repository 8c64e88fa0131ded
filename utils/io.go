package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// StdinPath is the input path which means standard input.
const StdinPath = "-"

// OpenInput opens the file at path, or returns stdin if path is StdinPath.
// Closing the returned reader never closes stdin. A nil stdin means os.Stdin.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fail to open input: %w", err)
	}
	return f, nil
}

// ReadLines calls fn with every line of r and its 1-based number. It stops at
// the first error returned by fn.
func ReadLines(r io.Reader, fn func(n int, line string) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if err := fn(n, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("fail to read line %d: %w", n+1, err)
	}
	return nil
}
