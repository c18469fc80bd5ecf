package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tusseed/internal/tus"
)

func sampleTable() *SeedTable {
	table := NewSeedTable([]tus.Feature{tus.FeatureAge, tus.FeatureRegion, tus.FeatureHouseholdType}, 3)
	table.Rows = append(table.Rows,
		SeedRow{
			ID:     IndividualID{Household: HouseholdID{SN1: 1, SN2: 1}, SN3: 1},
			Values: []tus.Category{tus.Age30To44, tus.London, tus.CoupleWithoutDependentChildren},
		},
		SeedRow{
			ID:     IndividualID{Household: HouseholdID{SN1: 1, SN2: 1}, SN3: 2},
			Values: []tus.Category{tus.Age25To29, nil, tus.CoupleWithoutDependentChildren},
		},
		SeedRow{
			ID:     IndividualID{Household: HouseholdID{SN1: 2, SN2: 1}, SN3: 1},
			Values: []tus.Category{nil, tus.Wales, tus.OnePersonHousehold},
		},
	)

	return table
}

func TestSeedTable_Basics(t *testing.T) {
	table := sampleTable()

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 2, table.Households())
	assert.Equal(t, 1, table.Column("region"))
	assert.Equal(t, -1, table.Column("carer"))
	assert.Equal(t, []string{"sn1", "sn2", "sn3", "age", "region", "household_type"}, table.Header())
}

func TestSeedTable_Records(t *testing.T) {
	records := sampleTable().Records()

	require.Len(t, records, 3)
	assert.Equal(t, []string{"1", "1", "2", "AGE_25_TO_29", "", "COUPLE_WITHOUT_DEPENDENT_CHILDREN"}, records[1])
	assert.Equal(t, []string{"2", "1", "1", "", "WALES", "ONE_PERSON_HOUSEHOLD"}, records[2])
}

func TestSeedTable_Select(t *testing.T) {
	table := sampleTable()

	selected, err := table.Select([]string{"household_type", "age"})
	require.NoError(t, err)
	assert.Equal(t, []string{"household_type", "age"}, selected.FeatureNames())
	assert.Equal(t, tus.OnePersonHousehold, selected.Rows[2].Values[0])
	assert.Nil(t, selected.Rows[2].Values[1])

	selected.Rows[0].Values[0] = nil
	assert.Equal(t, tus.CoupleWithoutDependentChildren, table.Rows[0].Values[2])

	_, err = table.Select([]string{"carer"})
	require.ErrorIs(t, err, ErrUnknownColumn)
}

func TestIndividualID_Less(t *testing.T) {
	a := IndividualID{Household: HouseholdID{SN1: 1, SN2: 2}, SN3: 5}
	b := IndividualID{Household: HouseholdID{SN1: 1, SN2: 3}, SN3: 1}
	c := IndividualID{Household: HouseholdID{SN1: 1, SN2: 3}, SN3: 2}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
	assert.Equal(t, "1/3/2", c.String())
}

func TestRawRecord_Age(t *testing.T) {
	age, ok := RawRecord{Codes: map[string]int{tus.VarAge: 42}}.Age()
	assert.True(t, ok)
	assert.Equal(t, 42, age)

	for _, codes := range []map[string]int{{}, {tus.VarAge: tus.CodeMissing}, {tus.VarAge: tus.CodeDontKnow}, {tus.VarAge: tus.MaxAge + 1}} {
		_, ok := RawRecord{Codes: codes}.Age()
		assert.False(t, ok, "codes %v", codes)
	}
}
