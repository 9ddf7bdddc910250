// Package lines reads line-oriented text files.
package lines

import (
	"bufio"
	"io"
)

// MaxLineLength is the longest line Read accepts.
const MaxLineLength = 1024 * 1024

// Read splits r into lines, dropping "\n" and "\r\n" terminators.
func Read(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	for scanner.Scan() {
		out = append(out, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
