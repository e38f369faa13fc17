package decode

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meltworks/slagview-cli/internal/dataset"
)

type delimDecoder struct{}

func (delimDecoder) CanDecode(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv") || strings.HasSuffix(name, ".txt")
}

// Decode reads delimited text: the first non-empty line is the header row,
// each following line pairs with it positionally. Ragged lines are
// tolerated: headers without a cell stay unset (resolved as 0/empty), extra
// cells without a header are dropped. Blank lines are skipped entirely.
func (delimDecoder) Decode(filename string, data []byte) ([]*dataset.Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(filename)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var header []string
	var rows []*dataset.Row
	line := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		line++
		if blank(rec) {
			continue
		}
		if header == nil {
			header = make([]string, len(rec))
			for i, h := range rec {
				header[i] = strings.TrimSpace(h)
			}
			continue
		}
		row := dataset.NewRow()
		for i, h := range header {
			if h == "" || i >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[i])
			if cell == "" {
				continue
			}
			row.Set(h, cellValue(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellValue tags a cell numeric when it parses cleanly as a decimal; the
// source text is kept either way.
func cellValue(cell string) dataset.Value {
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return dataset.Value{Raw: cell, Num: f, Numeric: true}
	}
	return dataset.TextValue(cell)
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func sniffDelimiter(filename string) rune {
	if strings.HasSuffix(strings.ToLower(filename), ".tsv") {
		return '\t'
	}
	return ','
}
