package sortcmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds the scanner buffer; sort keys can be whole lines, so
// very long lines must not truncate silently.
const maxLineSize = 64 * 1024 * 1024

// readInput collects lines from the given files in order. No files, or the
// name "-", means stdin.
func readInput(files []string) ([]string, error) {
	if len(files) == 0 {
		return readLines(os.Stdin)
	}

	var lines []string
	for _, name := range files {
		if name == "-" {
			stdinLines, err := readLines(os.Stdin)
			if err != nil {
				return nil, err
			}
			lines = append(lines, stdinLines...)
			continue
		}

		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("'%s': %w", name, err)
		}
		fileLines, err := readLines(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("'%s': %w", name, err)
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
