package normalizer

import (
	"tusseed/internal/models"
	"tusseed/internal/tus"
)

// member builds a raw record of household (sn1, 1) with the given household type code and age.
func member(sn1, sn3, hhType, age int) models.RawRecord {
	return models.RawRecord{
		ID: models.IndividualID{
			Household: models.HouseholdID{SN1: sn1, SN2: 1},
			SN3:       sn3,
		},
		Codes: map[string]int{
			tus.VarHouseholdType:    hhType,
			tus.VarAge:              age,
			tus.VarRegion:           tus.RegionLondon,
			tus.VarEconomicActivity: tus.EconEmployeeFullTime,
			tus.VarCarer:            tus.CarerNo,
		},
	}
}

// household builds size members of one household.
func household(sn1, size, hhType int) []models.RawRecord {
	records := make([]models.RawRecord, 0, size)
	for i := 1; i <= size; i++ {
		records = append(records, member(sn1, i, hhType, 30+i))
	}

	return records
}

func householdSizes(table *models.SeedTable) map[models.HouseholdID]int {
	sizes := make(map[models.HouseholdID]int)
	for _, row := range table.Rows {
		sizes[row.ID.Household]++
	}

	return sizes
}
