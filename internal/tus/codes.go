package tus

// Survey variable names as they appear in the individual and household files.
const (
	VarHouseholdSerial1 = "SN1"
	VarHouseholdSerial2 = "SN2"
	VarPersonSerial     = "SN3"

	VarAge                = "IAGE"
	VarChild              = "CHILD"
	VarEconomicActivity   = "ECONACT2"
	VarQualification      = "HIQUAL4"
	VarCarer              = "PROVCARE"
	VarPersonalIncome     = "TOTPINC"
	VarHouseholdType      = "HHTYPE4"
	VarPopulationDensity  = "POP_DEN2"
	VarRegion             = "GORPAF"
	VarAccommodation      = "HQ13A"
	VarHouseForm          = "HQ13B"
	VarFlatBuilding       = "HQ13C"
	VarOtherAccommodation = "HQ13D"
)

// Codes shared by several variables for non-substantive answers.
const (
	CodeMissing       = -9
	CodeDontKnow      = -8
	CodeNotApplicable = -7
	CodeNotEmployed   = -6
)

// CHILD: whether the respondent is a child of the household reference person.
const (
	ChildYes = 1
	ChildNo  = 2
)

// HHTYPE4: household type.
const (
	HHTypeSinglePerson                 = 1
	HHTypeMarriedCoupleNoChildren      = 2
	HHTypeMarriedCoupleChildrenUnder16 = 3
	HHTypeMarriedCoupleChildren16Plus  = 4
	HHTypeCohabCoupleNoChildren        = 5
	HHTypeCohabCoupleChildrenUnder16   = 6
	HHTypeCohabCoupleChildren16Plus    = 7
	HHTypeSameSexCouple                = 8
	HHTypeSingleParentChildrenUnder16  = 9
	HHTypeSingleParentChildren16Plus   = 10
	HHTypeTwoOrMoreCouples             = 11
	HHTypeComplexMarriedCouples        = 12
	HHTypeComplexCohabitingCouples     = 13
	HHTypeComplexSingleParents         = 14
	HHTypeComplexOtherWithoutCouples   = 15
	HHTypeUnrelatedPeopleOnly          = 16
)

// ECONACT2: economic activity.
const (
	EconEmployeeFullTime      = 1
	EconEmployeePartTime      = 2
	EconSelfEmployedFullTime  = 3
	EconSelfEmployedPartTime  = 4
	EconActiveUnknownStatus   = 5
	EconUnemployedILO         = 6
	EconRetired               = 7
	EconFullTimeStudent       = 8
	EconLookingAfterHome      = 9
	EconLongTermSick          = 10
	EconInactiveOtherReasons  = 11
	EconInactiveUnknownReason = 12
	EconNotClassifiable       = 13
)

// HIQUAL4: highest qualification.
const (
	QualDegree               = 1
	QualHigherBelowDegree    = 2
	QualALevels              = 3
	QualOLevels              = 4
	QualGCSEBelowC           = 5
	QualBelowGCSE            = 6
	QualOther                = 7
	QualNone                 = 8
	QualUnknownWhich         = 9
	QualGCSEUnknownGrade     = 10
	QualCityAndGuildsUnknown = 11
	QualOtherUnknownGrade    = 12
)

// PROVCARE: provides unpaid care.
const (
	CarerYes = 1
	CarerNo  = 2
)

// TOTPINC: weekly gross personal income band.
const (
	IncomeLessThan215 = 1
	Income215To435    = 2
	Income435To870    = 3
	Income870To1305   = 4
	Income1305To1740  = 5
	Income1740To2820  = 6
	Income2820To3420  = 7
	Income3420To3830  = 8
	Income3830To4580  = 9
	Income4580To6670  = 10
	Income6670OrMore  = 11
)

// POP_DEN2: population density of the primary sampling unit.
const (
	Density0To249     = 1
	Density250To999   = 2
	Density1000To1999 = 3
	Density2000To2999 = 4
	Density3000To3999 = 5
	Density4000To4999 = 6
	Density5000OrMore = 7
)

// GORPAF: government office region.
const (
	RegionNorthEast       = 1
	RegionNorthWest       = 2
	RegionYorkshire       = 3
	RegionEastMidlands    = 4
	RegionWestMidlands    = 5
	RegionEastern         = 6
	RegionLondon          = 7
	RegionSouthEast       = 8
	RegionSouthWest       = 9
	RegionWales           = 10
	RegionScotland        = 11
	RegionNorthernIreland = 12
)

// HQ13A..HQ13D: accommodation questions of the household questionnaire.
const (
	AccommodationHouse = 1
	AccommodationFlat  = 2
	AccommodationRooms = 3
	AccommodationOther = 4

	HouseDetached     = 1
	HouseSemiDetached = 2
	HouseTerraced     = 3

	FlatPurposeBuilt = 1
	FlatConverted    = 2

	OtherCaravan = 1
	OtherKind    = 2
)
