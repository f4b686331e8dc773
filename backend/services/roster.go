package services

import (
	"fmt"

	"salesrep-roster/backend/models"
)

// AllocateEven splits countryList into salesRepCount contiguous slices of
// equal size. countryList length must be a multiple of salesRepCount.
func AllocateEven(region string, countryList []string, salesRepCount int) []models.RosterEntry {
	size := len(countryList) / salesRepCount
	return fill(nil, region, countryList, 0, size, salesRepCount)
}

// AllocateUneven splits countryList into salesRepCount contiguous slices whose
// sizes differ by at most one. The larger slices come first.
func AllocateUneven(region string, countryList []string, salesRepCount int) []models.RosterEntry {
	base := len(countryList) / salesRepCount
	extra := len(countryList) - base*salesRepCount

	roster := make([]models.RosterEntry, 0, salesRepCount)
	roster = fill(roster, region, countryList, 0, base+1, extra)
	return fill(roster, region, countryList, extra*(base+1), base, salesRepCount-extra)
}

// fill appends count entries of size countries each, starting at offset.
func fill(roster []models.RosterEntry, region string, countryList []string, offset, size, count int) []models.RosterEntry {
	for i := 0; i < count; i++ {
		assigned := make([]string, size)
		copy(assigned, countryList[offset:offset+size])
		roster = append(roster, models.RosterEntry{
			Region:       region,
			CountryList:  assigned,
			CountryCount: size,
		})
		offset += size
	}
	return roster
}

// Allocate distributes a region's countries over salesRepCount representatives
// as evenly as possible, keeping list order.
func Allocate(region string, countryList []string, salesRepCount int) ([]models.RosterEntry, error) {
	if len(countryList) == 0 {
		return nil, &DomainError{Region: region, Err: ErrEmptyRegion}
	}
	if salesRepCount < 1 || salesRepCount > len(countryList) {
		return nil, &DomainError{
			Region: region,
			Err:    fmt.Errorf("%w: %d representatives for %d countries", ErrWorkloadOutOfBounds, salesRepCount, len(countryList)),
		}
	}

	var roster []models.RosterEntry
	if len(countryList)%salesRepCount == 0 {
		roster = AllocateEven(region, countryList, salesRepCount)
	} else {
		roster = AllocateUneven(region, countryList, salesRepCount)
	}
	return roster, nil
}

// checkWorkload asserts every representative of a region covers between
// MinCountriesPerRep and MaxCountriesPerRep countries. Regions smaller than
// MinCountriesPerRep are exempt and must be covered by a single representative.
func checkWorkload(region string, countryCount int, roster []models.RosterEntry) error {
	if countryCount < MinCountriesPerRep {
		if len(roster) != 1 {
			return &DomainError{
				Region: region,
				Err:    fmt.Errorf("%w: %d countries split over %d representatives", ErrWorkloadOutOfBounds, countryCount, len(roster)),
			}
		}
		return nil
	}
	for i, entry := range roster {
		if entry.CountryCount < MinCountriesPerRep || entry.CountryCount > MaxCountriesPerRep {
			return &DomainError{
				Region: region,
				Err:    fmt.Errorf("%w: representative %d has %d countries", ErrWorkloadOutOfBounds, i, entry.CountryCount),
			}
		}
	}
	return nil
}

// CalculateOptimalSalesRepRoster assigns every country to a representative,
// using the minimum representative count per region and balancing load within
// each region. Entries are grouped by region in first-seen order.
func CalculateOptimalSalesRepRoster(countries []models.Country) ([]models.RosterEntry, error) {
	var roster []models.RosterEntry
	for _, g := range GroupByRegion(countries) {
		countryList := g.Names()

		salesRepCount, err := MinSalesReps(len(countryList))
		if err != nil {
			return nil, withRegion(err, g.Region)
		}

		entries, err := Allocate(g.Region, countryList, salesRepCount)
		if err != nil {
			return nil, err
		}
		if err := checkWorkload(g.Region, len(countryList), entries); err != nil {
			return nil, err
		}
		roster = append(roster, entries...)
	}
	if roster == nil {
		roster = []models.RosterEntry{}
	}
	return roster, nil
}
