package tus

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFeature is returned when a feature name is not registered.
var ErrUnknownFeature = errors.New("unknown feature")

// Scope tells whether a feature describes a person or the whole household.
type Scope string

// Feature scopes.
const (
	ScopePeople    Scope = "people"
	ScopeHousehold Scope = "household"
)

// Feature is one categorical column of the seed.
type Feature struct {
	Name      string
	Scope     Scope
	Variables []string

	mapCodes func(codes map[string]int) Category

	// Features whose source question is not asked of everyone take the
	// answer from the age of the respondent instead.
	below16 Category
	above74 Category
}

// Map translates the raw codes of one individual into the feature's category.
// hasAge reports whether age is known. Age overrides are skipped when it is not,
// or when age is not a valid age such as a negative missing code.
func (f Feature) Map(codes map[string]int, age int, hasAge bool) Category {
	value := f.mapCodes(codes)

	if hasAge && ValidAge(age) {
		if f.below16 != nil && age < 16 {
			return f.below16
		}

		if f.above74 != nil && age > 74 {
			return f.above74
		}
	}

	return value
}

func (f Feature) String() string {
	return f.Name
}

func single(variable string, m CodeMap) func(map[string]int) Category {
	return func(codes map[string]int) Category {
		code, ok := codes[variable]
		if !ok {
			return nil
		}

		return m.Lookup(code)
	}
}

func pseudo(map[string]int) Category {
	return PseudoSingleton
}

func ageFromCodes(codes map[string]int) Category {
	age, ok := codes[VarAge]
	if !ok {
		return nil
	}

	return AgeBand(age)
}

// People features.
var (
	FeaturePseudo = Feature{
		Name:      "pseudo",
		Scope:     ScopePeople,
		Variables: []string{VarChild},
		mapCodes:  pseudo,
	}
	FeatureAge = Feature{
		Name:      "age",
		Scope:     ScopePeople,
		Variables: []string{VarAge},
		mapCodes:  ageFromCodes,
	}
	FeatureEconomicActivity = Feature{
		Name:      "economic_activity",
		Scope:     ScopePeople,
		Variables: []string{VarEconomicActivity},
		mapCodes:  single(VarEconomicActivity, EconomicActivityMap),
		below16:   EconomicActivityBelow16,
		above74:   EconomicActivityAbove74,
	}
	FeatureQualification = Feature{
		Name:      "qualification",
		Scope:     ScopePeople,
		Variables: []string{VarQualification},
		mapCodes:  single(VarQualification, QualificationMap),
		below16:   QualificationBelow16,
	}
	FeatureCarer = Feature{
		Name:      "carer",
		Scope:     ScopePeople,
		Variables: []string{VarCarer},
		mapCodes:  single(VarCarer, CarerMap),
	}
	FeaturePersonalIncome = Feature{
		Name:      "personal_income",
		Scope:     ScopePeople,
		Variables: []string{VarPersonalIncome},
		mapCodes:  single(VarPersonalIncome, PersonalIncomeMap),
		below16:   PersonalIncomeBelow16,
	}
)

// Household features.
var (
	FeatureHouseholdPseudo = Feature{
		Name:      "household_pseudo",
		Scope:     ScopeHousehold,
		Variables: []string{VarChild},
		mapCodes:  pseudo,
	}
	FeatureHouseholdType = Feature{
		Name:      "household_type",
		Scope:     ScopeHousehold,
		Variables: []string{VarHouseholdType},
		mapCodes:  single(VarHouseholdType, HouseholdTypeMap),
	}
	FeaturePopulationDensity = Feature{
		Name:      "population_density",
		Scope:     ScopeHousehold,
		Variables: []string{VarPopulationDensity},
		mapCodes:  single(VarPopulationDensity, PopulationDensityMap),
	}
	FeatureRegion = Feature{
		Name:      "region",
		Scope:     ScopeHousehold,
		Variables: []string{VarRegion},
		mapCodes:  single(VarRegion, RegionMap),
	}
	FeatureDwellingType = Feature{
		Name:  "dwelling_type",
		Scope: ScopeHousehold,
		Variables: []string{
			VarAccommodation, VarHouseForm, VarFlatBuilding, VarOtherAccommodation,
		},
		mapCodes: DwellingTypeOf,
	}
)

var allFeatures = []Feature{
	FeaturePseudo,
	FeatureAge,
	FeatureEconomicActivity,
	FeatureQualification,
	FeatureCarer,
	FeaturePersonalIncome,
	FeatureHouseholdPseudo,
	FeatureHouseholdType,
	FeaturePopulationDensity,
	FeatureRegion,
	FeatureDwellingType,
}

// AllFeatures returns every feature, people features first.
func AllFeatures() []Feature {
	out := make([]Feature, len(allFeatures))
	copy(out, allFeatures)

	return out
}

// LookupFeature finds a feature by name, ignoring case.
func LookupFeature(name string) (Feature, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range allFeatures {
		if f.Name == key {
			return f, nil
		}
	}

	return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// LookupFeatures resolves a list of feature names, keeping their order.
func LookupFeatures(names []string) ([]Feature, error) {
	features := make([]Feature, 0, len(names))
	for _, name := range names {
		f, err := LookupFeature(name)
		if err != nil {
			return nil, err
		}

		features = append(features, f)
	}

	return features, nil
}
