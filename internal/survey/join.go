package survey

import (
	"errors"
	"fmt"
	"sort"

	"tusseed/internal/models"
	"tusseed/internal/tus"
)

// Join errors.
var (
	ErrMissingKeyColumn = errors.New("missing key column")
	ErrInvalidKey       = errors.New("invalid key")
)

type householdRow struct {
	id     models.HouseholdID
	values map[string]int
}

// Join attaches household level variables to every individual. Individuals are
// ordered by key and each receives the fields of the last household whose key
// does not exceed its own household id. Columns present in the individual file
// are never overwritten by household columns of the same name.
func Join(individuals, households *Table) ([]models.RawRecord, error) {
	if err := requireColumns(individuals, tus.VarHouseholdSerial1, tus.VarHouseholdSerial2, tus.VarPersonSerial); err != nil {
		return nil, fmt.Errorf("individuals: %w", err)
	}

	if err := requireColumns(households, tus.VarHouseholdSerial1, tus.VarHouseholdSerial2); err != nil {
		return nil, fmt.Errorf("households: %w", err)
	}

	records := make([]models.RawRecord, 0, individuals.Len())

	for i, row := range individuals.Rows {
		id, err := individualKey(row)
		if err != nil {
			return nil, fmt.Errorf("individuals row %d: %w", i+1, err)
		}

		records = append(records, models.RawRecord{ID: id, Codes: row})
	}

	hhRows := make([]householdRow, 0, households.Len())

	for i, row := range households.Rows {
		id, err := householdKey(row)
		if err != nil {
			return nil, fmt.Errorf("households row %d: %w", i+1, err)
		}

		hhRows = append(hhRows, householdRow{id: id, values: row})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ID.Less(records[j].ID)
	})
	sort.SliceStable(hhRows, func(i, j int) bool {
		return hhRows[i].id.Less(hhRows[j].id)
	})

	shared := make(map[string]bool, len(households.Columns))
	for _, c := range households.Columns {
		if !individuals.Has(c) {
			shared[c] = true
		}
	}

	next := 0
	var current *householdRow

	for i := range records {
		for next < len(hhRows) && !records[i].ID.Household.Less(hhRows[next].id) {
			current = &hhRows[next]
			next++
		}

		codes := make(map[string]int, len(records[i].Codes)+len(shared))
		for k, v := range records[i].Codes {
			codes[k] = v
		}

		if current != nil {
			for k, v := range current.values {
				if shared[k] {
					codes[k] = v
				}
			}
		}

		records[i].Codes = codes
	}

	return records, nil
}

func requireColumns(table *Table, columns ...string) error {
	if table == nil {
		return fmt.Errorf("%w: no table", ErrMissingKeyColumn)
	}

	for _, c := range columns {
		if !table.Has(c) {
			return fmt.Errorf("%w: %s", ErrMissingKeyColumn, c)
		}
	}

	return nil
}

func householdKey(row map[string]int) (models.HouseholdID, error) {
	sn1, ok := row[tus.VarHouseholdSerial1]
	if !ok {
		return models.HouseholdID{}, fmt.Errorf("%w: %s", ErrInvalidKey, tus.VarHouseholdSerial1)
	}

	sn2, ok := row[tus.VarHouseholdSerial2]
	if !ok {
		return models.HouseholdID{}, fmt.Errorf("%w: %s", ErrInvalidKey, tus.VarHouseholdSerial2)
	}

	return models.HouseholdID{SN1: sn1, SN2: sn2}, nil
}

func individualKey(row map[string]int) (models.IndividualID, error) {
	hh, err := householdKey(row)
	if err != nil {
		return models.IndividualID{}, err
	}

	sn3, ok := row[tus.VarPersonSerial]
	if !ok {
		return models.IndividualID{}, fmt.Errorf("%w: %s", ErrInvalidKey, tus.VarPersonSerial)
	}

	return models.IndividualID{Household: hh, SN3: sn3}, nil
}
