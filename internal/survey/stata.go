package survey

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kshedden/datareader"
)

// ErrUnsupportedColumnType is returned for Stata columns that cannot hold codes.
var ErrUnsupportedColumnType = errors.New("unsupported column type")

// ReadStata reads a Stata dta file. Value labels and date conversion are
// disabled so that numeric columns keep their raw codes; string columns are
// parsed like delimited text.
func ReadStata(r io.ReadSeeker) (*Table, error) {
	rdr, err := datareader.NewStataReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open stata file: %w", err)
	}

	rdr.InsertCategoryLabels = false
	rdr.ConvertDates = false

	columns, err := normalizeColumns(rdr.ColumnNames())
	if err != nil {
		return nil, err
	}

	nrows := rdr.RowCount()
	table := &Table{Columns: columns, Rows: make([]map[string]int, nrows)}

	for i := range table.Rows {
		table.Rows[i] = make(map[string]int, len(columns))
	}

	if nrows == 0 {
		return table, nil
	}

	series, err := rdr.Read(nrows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read stata data: %w", err)
	}

	for j, s := range series {
		if j >= len(columns) {
			break
		}

		if err := fillColumn(table, columns[j], s.Data(), s.Missing()); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func fillColumn(table *Table, column string, data interface{}, missing []bool) error {
	set := func(i int, code int, ok bool) {
		if !ok || i >= len(table.Rows) {
			return
		}

		if missing != nil && missing[i] {
			return
		}

		table.Rows[i][column] = code
	}

	switch values := data.(type) {
	case []int8:
		for i, v := range values {
			set(i, int(v), true)
		}
	case []int16:
		for i, v := range values {
			set(i, int(v), true)
		}
	case []int32:
		for i, v := range values {
			set(i, int(v), true)
		}
	case []int64:
		for i, v := range values {
			set(i, int(v), true)
		}
	case []float32:
		for i, v := range values {
			code, ok := codeFromFloat(float64(v))
			set(i, code, ok)
		}
	case []float64:
		for i, v := range values {
			code, ok := codeFromFloat(v)
			set(i, code, ok)
		}
	case []string:
		for i, v := range values {
			code, ok := ParseCode(strings.TrimSpace(v))
			set(i, code, ok)
		}
	default:
		return fmt.Errorf("%w: %s is %T", ErrUnsupportedColumnType, column, data)
	}

	return nil
}
