package tus

// CodeMap translates the raw codes of one survey variable into categories.
// Codes that are listed with a nil category are known to carry no usable answer;
// codes that are not listed at all are treated the same way.
type CodeMap map[int]Category

// Lookup returns the category for code, or nil when the code is unmappable.
func (m CodeMap) Lookup(code int) Category {
	return m[code]
}

// HouseholdTypeMap maps HHTYPE4.
var HouseholdTypeMap = CodeMap{
	HHTypeSinglePerson:                 OnePersonHousehold,
	HHTypeSingleParentChildren16Plus:   LoneParentWithDependentChildren,
	HHTypeSingleParentChildrenUnder16:  LoneParentWithDependentChildren,
	HHTypeTwoOrMoreCouples:             MultiPersonHousehold,
	HHTypeSameSexCouple:                CoupleWithoutDependentChildren,
	HHTypeComplexMarriedCouples:        MultiPersonHousehold,
	HHTypeComplexCohabitingCouples:     MultiPersonHousehold,
	HHTypeComplexSingleParents:         MultiPersonHousehold,
	HHTypeComplexOtherWithoutCouples:   MultiPersonHousehold,
	HHTypeUnrelatedPeopleOnly:          MultiPersonHousehold,
	HHTypeMarriedCoupleNoChildren:      CoupleWithoutDependentChildren,
	HHTypeMarriedCoupleChildrenUnder16: CoupleWithDependentChildren,
	HHTypeMarriedCoupleChildren16Plus:  CoupleWithDependentChildren,
	HHTypeCohabCoupleNoChildren:        CoupleWithoutDependentChildren,
	HHTypeCohabCoupleChildrenUnder16:   CoupleWithDependentChildren,
	HHTypeCohabCoupleChildren16Plus:    CoupleWithDependentChildren,
}

// EconomicActivityMap maps ECONACT2.
var EconomicActivityMap = CodeMap{
	EconEmployeeFullTime:      EmployeeFullTime,
	EconEmployeePartTime:      EmployeePartTime,
	EconSelfEmployedFullTime:  SelfEmployed,
	EconSelfEmployedPartTime:  SelfEmployed,
	EconActiveUnknownStatus:   nil,
	EconUnemployedILO:         Unemployed,
	EconRetired:               Retired,
	EconFullTimeStudent:       InactiveFullTimeStudent,
	EconLookingAfterHome:      LookingAfterHome,
	EconLongTermSick:          LongTermSick,
	EconInactiveOtherReasons:  InactiveOther,
	EconInactiveUnknownReason: InactiveOther,
	EconNotClassifiable:       nil,
	CodeNotApplicable:         EconomicActivityBelow16,
}

// QualificationMap maps HIQUAL4.
var QualificationMap = CodeMap{
	QualDegree:               QualificationLevel45,
	QualHigherBelowDegree:    QualificationLevel3,
	QualALevels:              QualificationLevel3,
	QualOLevels:              QualificationLevel2,
	QualGCSEBelowC:           QualificationLevel1,
	QualBelowGCSE:            Apprenticeship,
	QualOther:                OtherQualification,
	QualNone:                 NoQualifications,
	QualUnknownWhich:         nil,
	QualGCSEUnknownGrade:     nil,
	QualCityAndGuildsUnknown: nil,
	QualOtherUnknownGrade:    nil,
	CodeMissing:              nil,
	CodeNotApplicable:        QualificationBelow16,
}

// CarerMap maps PROVCARE.
var CarerMap = CodeMap{
	CarerYes:     IsCarer,
	CarerNo:      NoCarer,
	CodeDontKnow: nil,
}

// PersonalIncomeMap maps TOTPINC.
var PersonalIncomeMap = CodeMap{
	CodeNotApplicable: PersonalIncomeBelow16,
	CodeNotEmployed:   nil,
	CodeDontKnow:      nil,
	IncomeLessThan215: LessThanGBP215,
	Income215To435:    BetweenGBP215And435,
	Income435To870:    BetweenGBP435And870,
	Income870To1305:   BetweenGBP870And1305,
	Income1305To1740:  BetweenGBP1305And1740,
	Income1740To2820:  BetweenGBP1740And2820,
	Income2820To3420:  BetweenGBP2820And3420,
	Income3420To3830:  BetweenGBP3420And3830,
	Income3830To4580:  BetweenGBP3830And4580,
	Income4580To6670:  BetweenGBP4590And6670,
	Income6670OrMore:  AboveGBP6670,
}

// PopulationDensityMap maps POP_DEN2.
var PopulationDensityMap = CodeMap{
	CodeMissing:       nil,
	Density0To249:     UpTo249,
	Density250To999:   Between250And999,
	Density1000To1999: Between1000And1999,
	Density2000To2999: Between2000And2999,
	Density3000To3999: Between3000And3999,
	Density4000To4999: Between4000And4999,
	Density5000OrMore: MoreThan5000,
}

// RegionMap maps GORPAF.
var RegionMap = CodeMap{
	RegionNorthEast:       NorthEast,
	RegionNorthWest:       NorthWestInclMerseyside,
	RegionYorkshire:       YorkshireAndHumberside,
	RegionEastMidlands:    EastMidlands,
	RegionWestMidlands:    WestMidlands,
	RegionEastern:         Eastern,
	RegionLondon:          London,
	RegionSouthEast:       SouthEastExclLondon,
	RegionSouthWest:       SouthWest,
	RegionWales:           Wales,
	RegionScotland:        Scotland,
	RegionNorthernIreland: NorthernIreland,
}

type ageBand struct {
	lo, hi int
	band   AgeStructure
}

// ageBands covers the ages of diary respondents; the survey has no diaries for children under 8.
var ageBands = []ageBand{
	{8, 9, Age8To9},
	{10, 14, Age10To14},
	{15, 15, Age15},
	{16, 17, Age16To17},
	{18, 19, Age18To19},
	{20, 24, Age20To24},
	{25, 29, Age25To29},
	{30, 44, Age30To44},
	{45, 59, Age45To59},
	{60, 64, Age60To64},
	{65, 74, Age65To74},
	{75, 84, Age75To84},
	{85, 89, Age85To89},
	{90, 99, Age90AndOver},
}

// MaxAge is the highest age IAGE records; older respondents are top-coded.
const MaxAge = 99

// ValidAge reports whether an IAGE value is an age in years rather than a
// non-substantive code or an out-of-range value.
func ValidAge(age int) bool {
	return age >= 0 && age <= MaxAge
}

// AgeBand returns the age band for an age in years, or nil outside 8..99.
func AgeBand(age int) Category {
	for _, b := range ageBands {
		if age >= b.lo && age <= b.hi {
			return b.band
		}
	}

	return nil
}

// DwellingTypeOf decides the dwelling type from the HQ13A..HQ13D answers in codes.
// Combinations the questionnaire cannot resolve yield nil.
func DwellingTypeOf(codes map[string]int) Category {
	accommodation, ok := codes[VarAccommodation]
	if !ok {
		return nil
	}

	switch accommodation {
	case AccommodationHouse:
		switch codeOrMissing(codes, VarHouseForm) {
		case HouseDetached:
			return DetachedWholeHouseOrBungalow
		case HouseSemiDetached:
			return SemiDetachedWholeHouseOrBungalow
		case HouseTerraced:
			return TerracedWholeHouseOrBungalow
		}
	case AccommodationFlat:
		switch codeOrMissing(codes, VarFlatBuilding) {
		case FlatPurposeBuilt:
			return FlatPurposeBuiltBlock
		case FlatConverted:
			return FlatConvertedOrSharedHouse
		}
	case AccommodationOther:
		switch codeOrMissing(codes, VarOtherAccommodation) {
		case OtherCaravan:
			return Caravan
		case OtherKind:
			return DwellingOther
		}
	case AccommodationRooms:
		return DwellingOther
	}

	return nil
}

func codeOrMissing(codes map[string]int, variable string) int {
	if code, ok := codes[variable]; ok {
		return code
	}

	return CodeMissing
}
