package survey

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		field  string
		want   int
		wantOk bool
	}{
		{"3", 3, true},
		{" 12 ", 12, true},
		{"-9", -9, true},
		{"3.0", 3, true},
		{"1e1", 10, true},
		{"3.5", 0, false},
		{"", 0, false},
		{".", 0, false},
		{"NA", 0, false},
		{"na", 0, false},
		{"NaN", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := ParseCode(tt.field)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadDelimited(t *testing.T) {
	input := "sn1\tsn2\tSn3\tIAGE\tGORPAF\n" +
		"1\t1\t1\t34\t7\n" +
		"1\t1\t2\t\t.\n" +
		"2\t1\t1\t8.0\tNA\n"

	table, err := ReadDelimited(strings.NewReader(input), '\t')
	require.NoError(t, err)

	assert.Equal(t, []string{"SN1", "SN2", "SN3", "IAGE", "GORPAF"}, table.Columns)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, map[string]int{"SN1": 1, "SN2": 1, "SN3": 1, "IAGE": 34, "GORPAF": 7}, table.Rows[0])
	assert.NotContains(t, table.Rows[1], "IAGE")
	assert.NotContains(t, table.Rows[1], "GORPAF")
	assert.Equal(t, 8, table.Rows[2]["IAGE"])

	assert.True(t, table.Has("iage"))
	assert.False(t, table.Has("HHTYPE4"))
}

func TestReadDelimited_CSV(t *testing.T) {
	input := "\ufeffSN1,SN2,HHTYPE4\n5,1,3\n"

	table, err := ReadDelimited(strings.NewReader(input), ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"SN1", "SN2", "HHTYPE4"}, table.Columns)
	assert.Equal(t, 3, table.Rows[0]["HHTYPE4"])
}

func TestReadDelimited_Errors(t *testing.T) {
	_, err := ReadDelimited(strings.NewReader(""), '\t')
	assert.ErrorIs(t, err, ErrNoHeader)

	_, err = ReadDelimited(strings.NewReader("SN1\tsn1\n1\t2\n"), '\t')
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = ReadDelimited(strings.NewReader("SN1\tSN2\n1\t2\t3\n"), '\t')
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	tabPath := filepath.Join(dir, "individuals.tab")
	require.NoError(t, os.WriteFile(tabPath, []byte("SN1\tSN2\tSN3\n1\t1\t1\n"), 0o644))

	table, err := ReadFile(tabPath)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	csvPath := filepath.Join(dir, "households.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte("SN1,SN2\n1,1\n2,1\n"), 0o644))

	table, err = ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	xlsPath := filepath.Join(dir, "households.xls")
	require.NoError(t, os.WriteFile(xlsPath, []byte("x"), 0o644))

	_, err = ReadFile(xlsPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadFile(filepath.Join(dir, "missing.tab"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFillColumn_ReaderColumns(t *testing.T) {
	table := &Table{Columns: []string{"IAGE"}, Rows: []map[string]int{{}, {}, {}}}

	err := fillColumn(table, "IAGE", []float64{34, 2.5, 40}, []bool{false, false, true})
	require.NoError(t, err)

	assert.Equal(t, 34, table.Rows[0]["IAGE"])
	assert.NotContains(t, table.Rows[1], "IAGE")
	assert.NotContains(t, table.Rows[2], "IAGE")

	err = fillColumn(table, "HHTYPE4", []int8{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Rows[2]["HHTYPE4"])

	err = fillColumn(table, "X", []bool{true}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedColumnType)
}
