// Package normalizer turns raw survey records into the validated categorical seed.
package normalizer

import (
	"fmt"
	"time"

	"tusseed/internal/models"
	"tusseed/internal/tus"
)

// Options configure a Processor.
type Options struct {
	// Features lists the columns kept in the seed; empty keeps all.
	Features []string
	// DropMissing removes individuals with a missing value in a kept column.
	DropMissing bool
	// SkipHouseholdValidation keeps structurally inconsistent households.
	SkipHouseholdValidation bool
}

// Report describes one run of the processor.
type Report struct {
	Validation       ValidationReport
	Duration         time.Duration
	InputRows        int
	MappedRows       int
	DroppedMissing   int
	OutputRows       int
	OutputHouseholds int
	Validated        bool
}

// Processor handles mapping, validation and filtering of the seed.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	filter      *FeatureFilter
	validate    bool
}

// NewProcessor creates a new processor instance.
func NewProcessor(opts Options) (*Processor, error) {
	if _, err := tus.LookupFeatures(opts.Features); err != nil {
		return nil, fmt.Errorf("invalid feature selection: %w", err)
	}

	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
		filter:      NewFeatureFilter(opts.Features, opts.DropMissing),
		validate:    !opts.SkipHouseholdValidation,
	}, nil
}

// Process transforms raw records into the seed table.
func (p *Processor) Process(records []models.RawRecord) (*models.SeedTable, *Report, error) {
	start := time.Now()
	report := &Report{InputRows: len(records), Validated: p.validate}

	// 1. Map raw codes to categories
	table, err := p.transformer.Transform(records)
	if err != nil {
		return nil, report, fmt.Errorf("transformation failed: %w", err)
	}

	report.MappedRows = table.Len()

	// 2. Drop inconsistent households
	if p.validate {
		validated, validation, validateErr := p.validator.Validate(table)
		if validateErr != nil {
			return nil, report, fmt.Errorf("validation failed: %w", validateErr)
		}

		table = validated
		report.Validation = validation
	}

	// 3. Select features and drop incomplete individuals
	seed, dropped, err := p.filter.Filter(table)
	report.DroppedMissing = dropped

	if err != nil {
		return nil, report, fmt.Errorf("filtering failed: %w", err)
	}

	report.OutputRows = seed.Len()
	report.OutputHouseholds = seed.Households()
	report.Duration = time.Since(start)

	return seed, report, nil
}
