// Package models holds the data types shared by the seed pipeline.
package models

import (
	"errors"
	"fmt"
	"strconv"

	"tusseed/internal/tus"
)

// Key columns written in front of the feature columns.
const (
	ColumnSN1 = "sn1"
	ColumnSN2 = "sn2"
	ColumnSN3 = "sn3"
)

// ErrUnknownColumn is returned when a feature column is not part of the table.
var ErrUnknownColumn = errors.New("unknown column")

// SeedRow is one individual of the seed. Values is aligned with SeedTable.Features;
// a nil value is a missing category.
type SeedRow struct {
	Values []tus.Category
	ID     IndividualID
}

// SeedTable is the categorical table of individuals.
type SeedTable struct {
	Features []tus.Feature
	Rows     []SeedRow
}

// NewSeedTable creates an empty table with the given feature columns.
func NewSeedTable(features []tus.Feature, capacity int) *SeedTable {
	return &SeedTable{
		Features: features,
		Rows:     make([]SeedRow, 0, capacity),
	}
}

// Len returns the number of individuals.
func (t *SeedTable) Len() int {
	return len(t.Rows)
}

// Column returns the index of a feature column, or -1.
func (t *SeedTable) Column(name string) int {
	for i, f := range t.Features {
		if f.Name == name {
			return i
		}
	}

	return -1
}

// FeatureNames returns the feature column names in order.
func (t *SeedTable) FeatureNames() []string {
	names := make([]string, len(t.Features))
	for i, f := range t.Features {
		names[i] = f.Name
	}

	return names
}

// Households counts the distinct households in the table.
func (t *SeedTable) Households() int {
	seen := make(map[HouseholdID]struct{})
	for _, row := range t.Rows {
		seen[row.ID.Household] = struct{}{}
	}

	return len(seen)
}

// Select returns a table restricted to the named features, in the given order.
// Rows share no slices with the receiver.
func (t *SeedTable) Select(names []string) (*SeedTable, error) {
	idx := make([]int, len(names))
	features := make([]tus.Feature, len(names))

	for i, name := range names {
		col := t.Column(name)
		if col < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
		}

		idx[i] = col
		features[i] = t.Features[col]
	}

	out := NewSeedTable(features, len(t.Rows))
	for _, row := range t.Rows {
		values := make([]tus.Category, len(idx))
		for i, col := range idx {
			values[i] = row.Values[col]
		}

		out.Rows = append(out.Rows, SeedRow{ID: row.ID, Values: values})
	}

	return out, nil
}

// Header returns the column names of Records.
func (t *SeedTable) Header() []string {
	return append([]string{ColumnSN1, ColumnSN2, ColumnSN3}, t.FeatureNames()...)
}

// Records renders every row as text cells matching Header. Missing categories are empty strings.
func (t *SeedTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make([]string, 0, 3+len(row.Values))
		record = append(record,
			strconv.Itoa(row.ID.Household.SN1),
			strconv.Itoa(row.ID.Household.SN2),
			strconv.Itoa(row.ID.SN3),
		)

		for _, v := range row.Values {
			if v == nil {
				record = append(record, "")
			} else {
				record = append(record, v.String())
			}
		}

		records = append(records, record)
	}

	return records
}
