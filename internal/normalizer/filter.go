package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"tusseed/internal/models"
)

// ErrEmptySeed is returned when no individual survives filtering.
var ErrEmptySeed = errors.New("seed is empty")

// FeatureFilter restricts a seed to chosen features and drops incomplete individuals.
type FeatureFilter struct {
	features    []string
	dropMissing bool
}

// NewFeatureFilter creates a filter for the named features. With no names every
// column is kept. dropMissing removes individuals with a missing value in any kept column.
func NewFeatureFilter(features []string, dropMissing bool) *FeatureFilter {
	return &FeatureFilter{
		features:    features,
		dropMissing: dropMissing,
	}
}

// Filter applies the filter. It returns the number of individuals dropped for
// missing values and fails with ErrEmptySeed when the result has no rows.
func (f *FeatureFilter) Filter(table *models.SeedTable) (*models.SeedTable, int, error) {
	if table == nil {
		return nil, 0, ErrNilTable
	}

	selected := table
	if len(f.features) > 0 {
		var err error

		selected, err = table.Select(f.features)
		if err != nil {
			return nil, 0, err
		}
	}

	dropped := 0

	if f.dropMissing {
		complete := models.NewSeedTable(selected.Features, selected.Len())
		for _, row := range selected.Rows {
			if hasMissing(row) {
				dropped++
				continue
			}

			complete.Rows = append(complete.Rows, row)
		}

		selected = complete
	}

	if selected.Len() == 0 {
		return nil, dropped, fmt.Errorf("%w: filtered by features [%s]",
			ErrEmptySeed, strings.Join(selected.FeatureNames(), ", "))
	}

	return selected, dropped, nil
}

func hasMissing(row models.SeedRow) bool {
	for _, v := range row.Values {
		if v == nil {
			return true
		}
	}

	return false
}
