// Package tus maps UK Time Use Survey 2000 codes onto the categories used by the study.
//
// The survey records far more detail than the study needs, so most mappings
// collapse many raw codes into one category. Codes the study cannot use
// (missing, refused, not applicable, unlisted) map to nil.
package tus

import "fmt"

// Category is a value of one of the study's categorical enumerations.
type Category interface {
	fmt.Stringer
	Ordinal() int
}

func enumName[T ~int](v T, names map[T]string, kind string) string {
	if name, ok := names[v]; ok {
		return name
	}

	return fmt.Sprintf("%s(%d)", kind, int(v))
}

// Pseudo is a placeholder feature that can stand in for any real feature.
type Pseudo int

// Pseudo values.
const (
	PseudoSingleton Pseudo = 1
)

var pseudoNames = map[Pseudo]string{
	PseudoSingleton: "SINGLETON",
}

func (p Pseudo) String() string { return enumName(p, pseudoNames, "Pseudo") }

// Ordinal returns the numeric value of the category.
func (p Pseudo) Ordinal() int { return int(p) }

// AgeStructure is the age band of an individual.
type AgeStructure int

// Age bands.
const (
	Age0To4 AgeStructure = iota
	Age5To7
	Age8To9
	Age10To14
	Age15
	Age16To17
	Age18To19
	Age20To24
	Age25To29
	Age30To44
	Age45To59
	Age60To64
	Age65To74
	Age75To84
	Age85To89
	Age90AndOver
)

var ageStructureNames = map[AgeStructure]string{
	Age0To4:      "AGE_0_TO_4",
	Age5To7:      "AGE_5_TO_7",
	Age8To9:      "AGE_8_TO_9",
	Age10To14:    "AGE_10_TO_14",
	Age15:        "AGE_15",
	Age16To17:    "AGE_16_TO_17",
	Age18To19:    "AGE_18_TO_19",
	Age20To24:    "AGE_20_TO_24",
	Age25To29:    "AGE_25_TO_29",
	Age30To44:    "AGE_30_TO_44",
	Age45To59:    "AGE_45_TO_59",
	Age60To64:    "AGE_60_TO_64",
	Age65To74:    "AGE_65_TO_74",
	Age75To84:    "AGE_75_TO_84",
	Age85To89:    "AGE_85_TO_89",
	Age90AndOver: "AGE_90_AND_OVER",
}

func (a AgeStructure) String() string { return enumName(a, ageStructureNames, "AgeStructure") }

// Ordinal returns the numeric value of the category.
func (a AgeStructure) Ordinal() int { return int(a) }

// HouseholdType is a simplified classification of household composition.
type HouseholdType int

// Household types.
const (
	OnePersonHousehold HouseholdType = iota + 1
	CoupleWithDependentChildren
	CoupleWithoutDependentChildren
	LoneParentWithDependentChildren
	MultiPersonHousehold
)

var householdTypeNames = map[HouseholdType]string{
	OnePersonHousehold:              "ONE_PERSON_HOUSEHOLD",
	CoupleWithDependentChildren:     "COUPLE_WITH_DEPENDENT_CHILDREN",
	CoupleWithoutDependentChildren:  "COUPLE_WITHOUT_DEPENDENT_CHILDREN",
	LoneParentWithDependentChildren: "LONE_PARENT_WITH_DEPENDENT_CHILDREN",
	MultiPersonHousehold:            "MULTI_PERSON_HOUSEHOLD",
}

func (h HouseholdType) String() string { return enumName(h, householdTypeNames, "HouseholdType") }

// Ordinal returns the numeric value of the category.
func (h HouseholdType) Ordinal() int { return int(h) }

// DwellingType is the accommodation type of a household.
type DwellingType int

// Dwelling types.
const (
	DetachedWholeHouseOrBungalow DwellingType = iota + 1
	SemiDetachedWholeHouseOrBungalow
	TerracedWholeHouseOrBungalow
	FlatPurposeBuiltBlock
	FlatConvertedOrSharedHouse
	Caravan
	DwellingOther
)

var dwellingTypeNames = map[DwellingType]string{
	DetachedWholeHouseOrBungalow:     "DETACHED_WHOLE_HOUSE_OR_BUNGALOW",
	SemiDetachedWholeHouseOrBungalow: "SEMI_DETACHED_WHOLE_HOUSE_OR_BUNGALOW",
	TerracedWholeHouseOrBungalow:     "TERRACED_WHOLE_HOUSE_OR_BUNGALOW",
	FlatPurposeBuiltBlock:            "FLAT_PURPOSE_BUILT_BLOCK",
	FlatConvertedOrSharedHouse:       "FLAT_CONVERTED_OR_SHARED_HOUSE",
	Caravan:                          "CARAVAN",
	DwellingOther:                    "OTHER",
}

func (d DwellingType) String() string { return enumName(d, dwellingTypeNames, "DwellingType") }

// Ordinal returns the numeric value of the category.
func (d DwellingType) Ordinal() int { return int(d) }

// Qualification is the highest qualification level of an individual.
type Qualification int

// Qualification levels.
const (
	NoQualifications Qualification = iota
	QualificationLevel1
	QualificationLevel2
	QualificationLevel3
	QualificationLevel45
	Apprenticeship
	OtherQualification
	QualificationBelow16
)

var qualificationNames = map[Qualification]string{
	NoQualifications:     "NO_QUALIFICATIONS",
	QualificationLevel1:  "LEVEL_1",
	QualificationLevel2:  "LEVEL_2",
	QualificationLevel3:  "LEVEL_3",
	QualificationLevel45: "LEVEL_45",
	Apprenticeship:       "APPRENTICESHIP",
	OtherQualification:   "OTHER_QUALIFICATION",
	QualificationBelow16: "BELOW_16",
}

func (q Qualification) String() string { return enumName(q, qualificationNames, "Qualification") }

// Ordinal returns the numeric value of the category.
func (q Qualification) Ordinal() int { return int(q) }

// EconomicActivity is the economic status of an individual.
type EconomicActivity int

// Economic activities.
const (
	EmployeePartTime EconomicActivity = iota + 1
	EmployeeFullTime
	SelfEmployed
	Unemployed
	ActiveFullTimeStudent
	Retired
	InactiveFullTimeStudent
	LookingAfterHome
	LongTermSick
	InactiveOther
	EconomicActivityBelow16
	EconomicActivityAbove74
)

var economicActivityNames = map[EconomicActivity]string{
	EmployeePartTime:        "EMPLOYEE_PART_TIME",
	EmployeeFullTime:        "EMPLOYEE_FULL_TIME",
	SelfEmployed:            "SELF_EMPLOYED",
	Unemployed:              "UNEMPLOYED",
	ActiveFullTimeStudent:   "ACTIVE_FULL_TIME_STUDENT",
	Retired:                 "RETIRED",
	InactiveFullTimeStudent: "INACTIVE_FULL_TIME_STUDENT",
	LookingAfterHome:        "LOOKING_AFTER_HOME",
	LongTermSick:            "LONG_TERM_SICK",
	InactiveOther:           "INACTIVE_OTHER",
	EconomicActivityBelow16: "BELOW_16",
	EconomicActivityAbove74: "ABOVE_74",
}

func (e EconomicActivity) String() string {
	return enumName(e, economicActivityNames, "EconomicActivity")
}

// Ordinal returns the numeric value of the category.
func (e EconomicActivity) Ordinal() int { return int(e) }

// Carer tells whether an individual provides unpaid care.
type Carer int

// Carer values.
const (
	IsCarer Carer = iota + 1
	NoCarer
)

var carerNames = map[Carer]string{
	IsCarer: "CARER",
	NoCarer: "NO_CARER",
}

func (c Carer) String() string { return enumName(c, carerNames, "Carer") }

// Ordinal returns the numeric value of the category.
func (c Carer) Ordinal() int { return int(c) }

// PersonalIncome is the weekly personal income band of an individual.
type PersonalIncome int

// Personal income bands.
const (
	PersonalIncomeBelow16 PersonalIncome = iota + 1
	LessThanGBP215
	BetweenGBP215And435
	BetweenGBP435And870
	BetweenGBP870And1305
	BetweenGBP1305And1740
	BetweenGBP1740And2820
	BetweenGBP2820And3420
	BetweenGBP3420And3830
	BetweenGBP3830And4580
	BetweenGBP4590And6670
	AboveGBP6670
)

var personalIncomeNames = map[PersonalIncome]string{
	PersonalIncomeBelow16: "BELOW_16",
	LessThanGBP215:        "LESS_THAN_GBP_215",
	BetweenGBP215And435:   "BETWEEN_GBP_215_AND_435",
	BetweenGBP435And870:   "BETWEEN_GBP_435_AND_870",
	BetweenGBP870And1305:  "BETWEEN_GBP_870_AND_1305",
	BetweenGBP1305And1740: "BETWEEN_GBP_1305_AND_1740",
	BetweenGBP1740And2820: "BETWEEN_GBP_1740_AND_2820",
	BetweenGBP2820And3420: "BETWEEN_GBP_2820_AND_3420",
	BetweenGBP3420And3830: "BETWEEN_GBP_3420_AND_3830",
	BetweenGBP3830And4580: "BETWEEN_GBP_3830_AND_4580",
	BetweenGBP4590And6670: "BETWEEN_GBP_4590_AND_6670",
	AboveGBP6670:          "ABOVE_GBP_6670",
}

func (p PersonalIncome) String() string {
	return enumName(p, personalIncomeNames, "PersonalIncome")
}

// Ordinal returns the numeric value of the category.
func (p PersonalIncome) Ordinal() int { return int(p) }

// PopulationDensity is the population density band (people per square km) of the area.
type PopulationDensity int

// Population density bands.
const (
	UpTo249 PopulationDensity = iota + 1
	Between250And999
	Between1000And1999
	Between2000And2999
	Between3000And3999
	Between4000And4999
	MoreThan5000
)

var populationDensityNames = map[PopulationDensity]string{
	UpTo249:            "UP_TO_249",
	Between250And999:   "BETWEEN_250_AND_999",
	Between1000And1999: "BETWEEN_1000_AND_1999",
	Between2000And2999: "BETWEEN_2000_AND_2999",
	Between3000And3999: "BETWEEN_3000_AND_3999",
	Between4000And4999: "BETWEEN_4000_AND_4999",
	MoreThan5000:       "MORE_THAN_5000",
}

func (p PopulationDensity) String() string {
	return enumName(p, populationDensityNames, "PopulationDensity")
}

// Ordinal returns the numeric value of the category.
func (p PopulationDensity) Ordinal() int { return int(p) }

// Region is a UK government office region.
type Region int

// Regions.
const (
	London Region = iota + 1
	NorthEast
	Wales
	Scotland
	NorthernIreland
	NorthWestInclMerseyside
	YorkshireAndHumberside
	EastMidlands
	WestMidlands
	Eastern
	SouthEastExclLondon
	SouthWest
)

var regionNames = map[Region]string{
	London:                  "LONDON",
	NorthEast:               "NORTH_EAST",
	Wales:                   "WALES",
	Scotland:                "SCOTLAND",
	NorthernIreland:         "NORTHERN_IRELAND",
	NorthWestInclMerseyside: "NORTH_WEST_INCL_MERSEYSIDE",
	YorkshireAndHumberside:  "YORKSHIRE_AND_HUMBERSIDE",
	EastMidlands:            "EAST_MIDLANDS",
	WestMidlands:            "WEST_MIDLANDS",
	Eastern:                 "EASTERN",
	SouthEastExclLondon:     "SOUTH_EAST_EXCL_LONDON",
	SouthWest:               "SOUTH_WEST",
}

func (r Region) String() string { return enumName(r, regionNames, "Region") }

// Ordinal returns the numeric value of the category.
func (r Region) Ordinal() int { return int(r) }
