// Package survey reads the individual and household files of the time use survey
// and joins them into raw records.
package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Reader errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported survey file format")
	ErrNoHeader          = errors.New("survey file has no header row")
	ErrDuplicateColumn   = errors.New("duplicate column")
)

// Table is a survey file held in memory. Column names are upper case and a
// missing value is an absent key in the row.
type Table struct {
	Columns []string
	Rows    []map[string]int
}

// Has reports whether the table has the named column.
func (t *Table) Has(column string) bool {
	column = strings.ToUpper(column)
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}

	return false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ReadFile reads a survey file, choosing the format from its extension.
func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey file: %w", err)
	}
	defer file.Close()

	var table *Table

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tab", ".tsv", ".txt":
		table, err = ReadDelimited(file, '\t')
	case ".csv":
		table, err = ReadDelimited(file, ',')
	case ".dta":
		table, err = ReadStata(file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return table, nil
}

// ReadDelimited reads a delimited text file whose first row holds variable names.
func ReadDelimited(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := normalizeColumns(header)
	if err != nil {
		return nil, err
	}

	table := &Table{Columns: columns}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+1, err)
		}

		row := make(map[string]int, len(columns))
		for i, field := range record {
			if code, ok := ParseCode(field); ok {
				row[columns[i]] = code
			}
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// ParseCode parses a raw survey value. Blank, ".", "NA" and non-integral
// values report false.
func ParseCode(field string) (int, bool) {
	field = strings.TrimSpace(field)

	switch strings.ToUpper(field) {
	case "", ".", "NA", "NAN":
		return 0, false
	}

	if code, err := strconv.Atoi(field); err == nil {
		return code, true
	}

	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}

	return codeFromFloat(f)
}

func codeFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}

	return int(f), true
}

func normalizeColumns(header []string) ([]string, error) {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))

	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}

		seen[name] = true
		columns[i] = name
	}

	return columns, nil
}
