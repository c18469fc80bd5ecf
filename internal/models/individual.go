package models

import (
	"fmt"

	"tusseed/internal/tus"
)

// HouseholdID identifies a household by its two survey serial numbers.
type HouseholdID struct {
	SN1 int `json:"sn1"`
	SN2 int `json:"sn2"`
}

// Less orders households by SN1, then SN2.
func (h HouseholdID) Less(other HouseholdID) bool {
	if h.SN1 != other.SN1 {
		return h.SN1 < other.SN1
	}

	return h.SN2 < other.SN2
}

func (h HouseholdID) String() string {
	return fmt.Sprintf("%d/%d", h.SN1, h.SN2)
}

// IndividualID identifies a person within a household.
type IndividualID struct {
	Household HouseholdID `json:"household"`
	SN3       int         `json:"sn3"`
}

// Less orders individuals by household, then SN3.
func (i IndividualID) Less(other IndividualID) bool {
	if i.Household != other.Household {
		return i.Household.Less(other.Household)
	}

	return i.SN3 < other.SN3
}

func (i IndividualID) String() string {
	return fmt.Sprintf("%s/%d", i.Household, i.SN3)
}

// RawRecord is one individual of the survey with its household fields joined in.
// Codes holds raw survey codes keyed by upper-case variable name; an absent key is a missing answer.
type RawRecord struct {
	Codes map[string]int
	ID    IndividualID
}

// Age returns the age in years and whether it is known. Missing and
// out-of-range IAGE codes are unknown.
func (r RawRecord) Age() (int, bool) {
	age, ok := r.Codes[tus.VarAge]
	if !ok || !tus.ValidAge(age) {
		return 0, false
	}

	return age, true
}
