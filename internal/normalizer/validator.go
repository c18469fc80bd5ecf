package normalizer

import (
	"errors"
	"fmt"

	"tusseed/internal/models"
	"tusseed/internal/tus"
)

// Validation errors.
var (
	ErrNilTable             = errors.New("seed table is nil")
	ErrMissingHouseholdType = errors.New("seed table has no household_type column")
)

// ValidationReport summarizes what the household validator removed.
type ValidationReport struct {
	RemovedByType      map[tus.HouseholdType]int
	Households         int
	HouseholdsRemoved  int
	IndividualsRemoved int
}

// Validator removes households whose declared type contradicts their size.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

type householdAccumulator struct {
	kind tus.Category
	size int
}

// Validate groups rows by household and drops every member of invalid households.
// The household type of a group is the one of its first member.
func (v *Validator) Validate(table *models.SeedTable) (*models.SeedTable, ValidationReport, error) {
	report := ValidationReport{RemovedByType: make(map[tus.HouseholdType]int)}

	if table == nil {
		return nil, report, ErrNilTable
	}

	col := table.Column(tus.FeatureHouseholdType.Name)
	if col < 0 {
		return nil, report, ErrMissingHouseholdType
	}

	order := make([]models.HouseholdID, 0)
	groups := make(map[models.HouseholdID]*householdAccumulator)

	for _, row := range table.Rows {
		acc, ok := groups[row.ID.Household]
		if !ok {
			acc = &householdAccumulator{kind: row.Values[col]}
			groups[row.ID.Household] = acc
			order = append(order, row.ID.Household)
		}

		acc.size++
	}

	invalid := make(map[models.HouseholdID]bool)

	for _, id := range order {
		acc := groups[id]
		if IsValidHousehold(acc.kind, acc.size) {
			continue
		}

		invalid[id] = true
		report.HouseholdsRemoved++
		report.IndividualsRemoved += acc.size

		if kind, ok := acc.kind.(tus.HouseholdType); ok {
			report.RemovedByType[kind]++
		}
	}

	report.Households = len(order)

	out := models.NewSeedTable(table.Features, table.Len()-report.IndividualsRemoved)
	for _, row := range table.Rows {
		if !invalid[row.ID.Household] {
			out.Rows = append(out.Rows, row)
		}
	}

	return out, report, nil
}

// IsValidHousehold reports whether a household of the given type may have size members.
// Households of unknown type and one-person households are never rejected.
func IsValidHousehold(kind tus.Category, size int) bool {
	switch kind {
	case tus.CoupleWithDependentChildren:
		return size > 2
	case tus.CoupleWithoutDependentChildren:
		return size == 2
	case tus.LoneParentWithDependentChildren:
		return size >= 2
	case tus.MultiPersonHousehold:
		return size >= 2
	}

	return true
}

func (r ValidationReport) String() string {
	return fmt.Sprintf("%d of %d households invalid, %d individuals removed",
		r.HouseholdsRemoved, r.Households, r.IndividualsRemoved)
}
