package normalizer

import (
	"errors"

	"tusseed/internal/models"
	"tusseed/internal/tus"
)

// ErrNoFeatures is returned when the transformer has no feature to map.
var ErrNoFeatures = errors.New("no features to map")

// Transformer maps raw survey records onto the study's categories.
type Transformer struct {
	features []tus.Feature
}

// NewTransformer creates a transformer for the given features.
// With no features, every registered feature is mapped.
func NewTransformer(features ...tus.Feature) *Transformer {
	if len(features) == 0 {
		features = tus.AllFeatures()
	}

	return &Transformer{
		features: features,
	}
}

// Features returns the columns the transformer produces.
func (t *Transformer) Features() []tus.Feature {
	return t.features
}

// Transform maps every record. The result has one row per record, in input order;
// codes that cannot be mapped become nil values, never errors.
func (t *Transformer) Transform(records []models.RawRecord) (*models.SeedTable, error) {
	if len(t.features) == 0 {
		return nil, ErrNoFeatures
	}

	table := models.NewSeedTable(t.features, len(records))

	for _, rec := range records {
		age, hasAge := rec.Age()

		values := make([]tus.Category, len(t.features))
		for i, f := range t.features {
			values[i] = f.Map(rec.Codes, age, hasAge)
		}

		table.Rows = append(table.Rows, models.SeedRow{ID: rec.ID, Values: values})
	}

	return table, nil
}
