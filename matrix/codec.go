// SPDX-License-Identifier: MIT

// Package matrix: text codec, reading side.
// Load consumes a line-oriented numeric block: one matrix row per text
// line, values separated by white space, parsed under a caller-chosen
// locale. The column count is discovered from the data itself, so files
// need no header. Rendering back to text lives in format.go.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
)

const (
	opLoad     = "Load"
	opLoadFile = "LoadFile"
)

// Scanner sizing: rows of large matrices can exceed bufio's default
// 64 KiB line limit.
const (
	scanBufInitial = 64 * 1024
	scanBufMax     = 1 << 20
)

// Load reads a matrix from r under the given locale.
// Stage 1 (Scan): blank lines before the data are skipped; the first
// blank line after the data terminates the read, as does end of input.
// Stage 2 (Parse): each remaining line becomes one row via RowParser;
// rows are appended to a flat buffer, so row lengths are not constrained
// until the end.
// Stage 3 (Shape): the element total must divide evenly by the row count;
// the quotient is the column count.
//
// Behavior highlights:
//   - Input after the terminating blank line is not parsed.
//   - The locale drives separator handling: under German, "1.234,5" is
//     one value; under American English it is malformed.
//
// Errors:
//   - ErrMalformedRow when a token fails to parse (diagnostic wrapped).
//   - ErrEmptyInput when the input holds no data rows at all.
//   - ErrRaggedRows when rows carried unequal value counts.
//   - Reader failures propagate wrapped with the operation tag.
//
// Complexity: O(total input length).
func Load(r io.Reader, tag language.Tag) (*General, error) {
	parser := NewRowParser(tag)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanBufInitial), scanBufMax)

	var data []float64
	numRows := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if numRows == 0 {
				// Leading padding before the block.
				continue
			}
			// First blank after the block ends it.
			break
		}

		row, err := parser.ParseRow(line)
		if err != nil {
			return nil, matrixErrorf(opLoad, err)
		}
		data = append(data, row...)
		numRows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opLoad, err)
	}

	if numRows == 0 {
		return nil, matrixErrorf(opLoad, ErrEmptyInput)
	}
	if len(data)%numRows != 0 {
		return nil, fmt.Errorf("%s: %d values across %d rows: %w",
			opLoad, len(data), numRows, ErrRaggedRows)
	}

	m, err := NewFromSlice(numRows, len(data)/numRows, data)
	if err != nil {
		return nil, matrixErrorf(opLoad, err)
	}

	return m, nil
}

// LoadFile reads a matrix from a file, parsing numbers under American
// English — the usual interchange convention for matrix files regardless
// of the host's locale. Use Load directly for any other locale.
//
// Errors: as Load, plus file-open failures wrapped with the operation tag.
func LoadFile(path string) (*General, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoadFile, err)
	}
	defer f.Close()

	m, err := Load(f, language.AmericanEnglish)
	if err != nil {
		return nil, matrixErrorf(opLoadFile, err)
	}

	return m, nil
}
