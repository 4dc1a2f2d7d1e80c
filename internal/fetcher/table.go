package fetcher

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/text/encoding/unicode"
)

// rowReader yields table rows, header first, and io.EOF when exhausted.
type rowReader interface {
	Read() ([]string, error)
}

// openTable picks a reader by file extension.
func openTable(path string, opts TableOptions) (rowReader, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		r, err := openXLSX(path, opts.Sheet)
		if err != nil {
			return nil, err
		}
		return &headerTrimReader{r: r}, nil
	}
	return openDelimited(path, opts.Delimiter)
}

func openDelimited(path string, delimiter rune) (rowReader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "open table")
	}
	data, err := decodeUTF8(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	if delimiter != 0 {
		reader.Comma = delimiter
	}

	return &headerTrimReader{r: reader}, nil
}

// decodeUTF8 rejects input that is not valid UTF-8 and drops a leading UTF-8
// byte-order mark. Other byte-order marks are not valid UTF-8 and fail.
func decodeUTF8(raw []byte) ([]byte, error) {
	if !utf8.Valid(raw) {
		return nil, eris.New("input is not valid UTF-8")
	}
	data, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, eris.Wrap(err, "decode UTF-8")
	}
	return data, nil
}

// headerTrimReader trims surrounding whitespace from the header names only.
// Data cells pass through untouched; numeric cells are trimmed when parsed.
type headerTrimReader struct {
	r    rowReader
	seen bool
}

func (t *headerTrimReader) Read() ([]string, error) {
	record, err := t.r.Read()
	if err != nil {
		return nil, err
	}
	if !t.seen {
		t.seen = true
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
	}
	return record, nil
}

// sheetReader serves the rows of one worksheet.
type sheetReader struct {
	rows [][]string
	next int
}

func openXLSX(path, sheetName string) (*sheetReader, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	var sheet *xlsx.Sheet
	if sheetName != "" {
		s, ok := f.Sheet[sheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", sheetName)
		}
		sheet = s
	} else {
		if len(f.Sheets) == 0 {
			return nil, eris.New("xlsx: workbook has no sheets")
		}
		sheet = f.Sheets[0]
	}

	sr := &sheetReader{rows: make([][]string, 0, len(sheet.Rows))}
	width := 0
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if len(sr.rows) == 0 {
			width = len(cells)
		}
		sr.rows = append(sr.rows, padRow(cells, width))
	}
	return sr, nil
}

// padRow fits a row to the header width. Spreadsheets omit trailing empty
// cells.
func padRow(cells []string, width int) []string {
	if len(cells) >= width {
		return cells[:width]
	}
	out := make([]string, width)
	copy(out, cells)
	return out
}

func (s *sheetReader) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++
	return row, nil
}
