package survey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillColumn(t *testing.T) {
	tests := []struct {
		name    string
		data    interface{}
		missing []bool
		want    []map[string]int
	}{
		{
			name:    "int8 with missing mask",
			data:    []int8{1, -9, 4},
			missing: []bool{false, false, true},
			want:    []map[string]int{{"X": 1}, {"X": -9}, {}},
		},
		{
			name: "int16",
			data: []int16{300, 2, 0},
			want: []map[string]int{{"X": 300}, {"X": 2}, {"X": 0}},
		},
		{
			name:    "int32",
			data:    []int32{7, 8, 9},
			missing: []bool{true, false, false},
			want:    []map[string]int{{}, {"X": 8}, {"X": 9}},
		},
		{
			name: "int64",
			data: []int64{11, 12, 13},
			want: []map[string]int{{"X": 11}, {"X": 12}, {"X": 13}},
		},
		{
			name: "float32",
			data: []float32{2, 2.5, -7},
			want: []map[string]int{{"X": 2}, {}, {"X": -7}},
		},
		{
			name:    "float64 NaN and fractions are missing",
			data:    []float64{3, math.NaN(), 3.5},
			missing: []bool{false, false, false},
			want:    []map[string]int{{"X": 3}, {}, {}},
		},
		{
			name: "strings parsed like delimited text",
			data: []string{" 5 ", ".", "NA"},
			want: []map[string]int{{"X": 5}, {}, {}},
		},
		{
			name: "more values than rows",
			data: []int64{1, 2, 3, 4},
			want: []map[string]int{{"X": 1}, {"X": 2}, {"X": 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Columns: []string{"X"}, Rows: make([]map[string]int, len(tt.want))}
			for i := range table.Rows {
				table.Rows[i] = map[string]int{}
			}

			require.NoError(t, fillColumn(table, "X", tt.data, tt.missing))
			assert.Equal(t, tt.want, table.Rows)
		})
	}
}

func TestFillColumn_UnsupportedType(t *testing.T) {
	table := &Table{Columns: []string{"X"}, Rows: []map[string]int{{}}}

	err := fillColumn(table, "X", []bool{true}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedColumnType)
	assert.Empty(t, table.Rows[0])
}
