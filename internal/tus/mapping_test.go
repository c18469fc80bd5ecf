package tus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeBand(t *testing.T) {
	tests := []struct {
		age  int
		want Category
	}{
		{7, nil},
		{8, Age8To9},
		{9, Age8To9},
		{10, Age10To14},
		{14, Age10To14},
		{15, Age15},
		{16, Age16To17},
		{19, Age18To19},
		{24, Age20To24},
		{29, Age25To29},
		{30, Age30To44},
		{44, Age30To44},
		{45, Age45To59},
		{64, Age60To64},
		{74, Age65To74},
		{84, Age75To84},
		{89, Age85To89},
		{90, Age90AndOver},
		{99, Age90AndOver},
		{100, nil},
		{-9, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeBand(tt.age), "age %d", tt.age)
	}
}

func TestCodeMap_UnknownCodesAreNull(t *testing.T) {
	maps := map[string]CodeMap{
		"household_type":     HouseholdTypeMap,
		"economic_activity":  EconomicActivityMap,
		"qualification":      QualificationMap,
		"carer":              CarerMap,
		"personal_income":    PersonalIncomeMap,
		"population_density": PopulationDensityMap,
		"region":             RegionMap,
	}

	for name, m := range maps {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, m.Lookup(9999))
			assert.Nil(t, m.Lookup(CodeMissing))
		})
	}
}

func TestHouseholdTypeMap(t *testing.T) {
	assert.Equal(t, OnePersonHousehold, HouseholdTypeMap.Lookup(HHTypeSinglePerson))
	assert.Equal(t, CoupleWithDependentChildren, HouseholdTypeMap.Lookup(HHTypeCohabCoupleChildrenUnder16))
	assert.Equal(t, CoupleWithoutDependentChildren, HouseholdTypeMap.Lookup(HHTypeSameSexCouple))
	assert.Equal(t, LoneParentWithDependentChildren, HouseholdTypeMap.Lookup(HHTypeSingleParentChildren16Plus))
	assert.Equal(t, MultiPersonHousehold, HouseholdTypeMap.Lookup(HHTypeUnrelatedPeopleOnly))
}

func TestCodeMap_Deterministic(t *testing.T) {
	for code := -10; code < 20; code++ {
		first := RegionMap.Lookup(code)
		for range 5 {
			assert.Equal(t, first, RegionMap.Lookup(code))
		}
	}
}

func TestDwellingTypeOf(t *testing.T) {
	tests := []struct {
		name  string
		codes map[string]int
		want  Category
	}{
		{"detached house", map[string]int{VarAccommodation: AccommodationHouse, VarHouseForm: HouseDetached}, DetachedWholeHouseOrBungalow},
		{"semi-detached house", map[string]int{VarAccommodation: AccommodationHouse, VarHouseForm: HouseSemiDetached}, SemiDetachedWholeHouseOrBungalow},
		{"terraced house", map[string]int{VarAccommodation: AccommodationHouse, VarHouseForm: HouseTerraced}, TerracedWholeHouseOrBungalow},
		{"house without form", map[string]int{VarAccommodation: AccommodationHouse}, nil},
		{"purpose built flat", map[string]int{VarAccommodation: AccommodationFlat, VarFlatBuilding: FlatPurposeBuilt}, FlatPurposeBuiltBlock},
		{"converted flat", map[string]int{VarAccommodation: AccommodationFlat, VarFlatBuilding: FlatConverted}, FlatConvertedOrSharedHouse},
		{"flat ignores house form", map[string]int{VarAccommodation: AccommodationFlat, VarHouseForm: HouseDetached}, nil},
		{"caravan", map[string]int{VarAccommodation: AccommodationOther, VarOtherAccommodation: OtherCaravan}, Caravan},
		{"other kind", map[string]int{VarAccommodation: AccommodationOther, VarOtherAccommodation: OtherKind}, DwellingOther},
		{"rooms", map[string]int{VarAccommodation: AccommodationRooms}, DwellingOther},
		{"missing accommodation code", map[string]int{VarAccommodation: CodeMissing}, nil},
		{"nothing answered", map[string]int{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DwellingTypeOf(tt.codes))
		})
	}
}

func TestFeature_AgeOverrides(t *testing.T) {
	codes := map[string]int{
		VarEconomicActivity: EconRetired,
		VarQualification:    QualDegree,
		VarPersonalIncome:   Income6670OrMore,
	}

	t.Run("below 16", func(t *testing.T) {
		assert.Equal(t, EconomicActivityBelow16, FeatureEconomicActivity.Map(codes, 12, true))
		assert.Equal(t, QualificationBelow16, FeatureQualification.Map(codes, 12, true))
		assert.Equal(t, PersonalIncomeBelow16, FeaturePersonalIncome.Map(codes, 12, true))
	})

	t.Run("above 74", func(t *testing.T) {
		assert.Equal(t, EconomicActivityAbove74, FeatureEconomicActivity.Map(codes, 80, true))
		assert.Equal(t, QualificationLevel45, FeatureQualification.Map(codes, 80, true))
		assert.Equal(t, AboveGBP6670, FeaturePersonalIncome.Map(codes, 80, true))
	})

	t.Run("override replaces null", func(t *testing.T) {
		assert.Equal(t, EconomicActivityAbove74, FeatureEconomicActivity.Map(map[string]int{}, 75, true))
	})

	t.Run("unknown age keeps mapped value", func(t *testing.T) {
		assert.Equal(t, Retired, FeatureEconomicActivity.Map(codes, 0, false))
	})

	t.Run("young child below every band", func(t *testing.T) {
		assert.Nil(t, AgeBand(4))
		assert.Equal(t, EconomicActivityBelow16, FeatureEconomicActivity.Map(codes, 4, true))
	})

	t.Run("invalid age keeps mapped value", func(t *testing.T) {
		full := map[string]int{
			VarAge:              CodeMissing,
			VarEconomicActivity: EconEmployeeFullTime,
			VarQualification:    QualDegree,
			VarPersonalIncome:   Income6670OrMore,
		}

		for _, age := range []int{CodeMissing, CodeDontKnow, 120} {
			assert.Nil(t, FeatureAge.Map(full, age, true), "age %d", age)
			assert.Equal(t, EmployeeFullTime, FeatureEconomicActivity.Map(full, age, true), "age %d", age)
			assert.Equal(t, QualificationLevel45, FeatureQualification.Map(full, age, true), "age %d", age)
			assert.Equal(t, AboveGBP6670, FeaturePersonalIncome.Map(full, age, true), "age %d", age)
		}
	})
}

func TestValidAge(t *testing.T) {
	for _, age := range []int{0, 7, 16, MaxAge} {
		assert.True(t, ValidAge(age), "age %d", age)
	}

	for _, age := range []int{CodeMissing, CodeDontKnow, CodeNotApplicable, MaxAge + 1} {
		assert.False(t, ValidAge(age), "age %d", age)
	}
}

func TestFeature_PseudoAlwaysSingleton(t *testing.T) {
	assert.Equal(t, PseudoSingleton, FeaturePseudo.Map(map[string]int{VarChild: ChildYes}, 30, true))
	assert.Equal(t, PseudoSingleton, FeaturePseudo.Map(map[string]int{}, 0, false))
	assert.Equal(t, PseudoSingleton, FeatureHouseholdPseudo.Map(nil, 0, false))
}

func TestFeature_AgeFromIAGE(t *testing.T) {
	assert.Equal(t, Age30To44, FeatureAge.Map(map[string]int{VarAge: 33}, 33, true))
	assert.Nil(t, FeatureAge.Map(map[string]int{}, 0, false))
}

func TestLookupFeature(t *testing.T) {
	f, err := LookupFeature(" Household_Type ")
	require.NoError(t, err)
	assert.Equal(t, "household_type", f.Name)
	assert.Equal(t, ScopeHousehold, f.Scope)

	_, err = LookupFeature("shoe_size")
	require.ErrorIs(t, err, ErrUnknownFeature)

	features, err := LookupFeatures([]string{"region", "age"})
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "region", features[0].Name)
	assert.Equal(t, "age", features[1].Name)
}

func TestAllFeatures_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range AllFeatures() {
		assert.False(t, seen[f.Name], "duplicate feature %s", f.Name)
		seen[f.Name] = true
	}

	assert.Len(t, seen, 11)
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "COUPLE_WITH_DEPENDENT_CHILDREN", CoupleWithDependentChildren.String())
	assert.Equal(t, 2, CoupleWithDependentChildren.Ordinal())
	assert.Equal(t, "AGE_90_AND_OVER", Age90AndOver.String())
	assert.Equal(t, 15, Age90AndOver.Ordinal())
	assert.Equal(t, "Region(99)", Region(99).String())
}
