// Package csvfile decodes uploaded CSV files into header-keyed rows,
// transcoding Latin-1-family input to UTF-8 when needed.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// ErrNoHeader is returned by NewReader for a file with no rows at all.
var ErrNoHeader = errors.New("no header row")

// Row is one data line keyed by header name, with its 1-indexed line
// number (the header is line 1).
type Row struct {
	Line   int
	Fields map[string]string
}

// Reader iterates the data rows of a decoded CSV document.
type Reader struct {
	header []string
	rows   *csv.Reader
	line   int
}

// Decode strips a UTF-8 BOM and returns the input as UTF-8. Content that
// is not valid UTF-8 gets a single best-effort transcoding pass assuming
// ISO 8859-1; mixed-encoding files may still come out wrong.
func Decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, bomUTF8)

	if utf8.Valid(data) {
		return data, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("latin-1 fallback decode: %w", err)
	}
	return decoded, nil
}

// NewReader decodes data and reads the header row. An empty file is an
// error; header cells are trimmed.
func NewReader(data []byte) (*Reader, error) {
	decoded, err := Decode(data)
	if err != nil {
		return nil, err
	}

	rows := csv.NewReader(bytes.NewReader(decoded))
	rows.FieldsPerRecord = -1
	rows.LazyQuotes = true
	rows.TrimLeadingSpace = true

	header, err := rows.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	return &Reader{header: header, rows: rows, line: 1}, nil
}

// Header returns the trimmed header cells.
func (r *Reader) Header() []string {
	return r.header
}

// MissingColumns returns the expected column names absent from the header.
func (r *Reader) MissingColumns(expected []string) []string {
	var missing []string
	for _, want := range expected {
		found := false
		for _, have := range r.header {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return missing
}

// Next returns the next data row. Short rows are padded with empty values
// and long rows truncated so every row carries exactly the header's
// columns. io.EOF signals the end of the document.
func (r *Reader) Next() (Row, error) {
	record, err := r.rows.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		r.line++
		return Row{Line: r.line}, fmt.Errorf("line %d: %w", r.line, err)
	}
	r.line++

	if len(record) < len(r.header) {
		padded := make([]string, len(r.header))
		copy(padded, record)
		record = padded
	} else if len(record) > len(r.header) {
		record = record[:len(r.header)]
	}

	fields := make(map[string]string, len(r.header))
	for i, name := range r.header {
		fields[name] = record[i]
	}

	return Row{Line: r.line, Fields: fields}, nil
}
