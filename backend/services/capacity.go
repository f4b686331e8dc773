package services

import "salesrep-roster/backend/models"

const (
	// MaxCountriesPerRep is the most countries a single representative may cover
	MaxCountriesPerRep = 7
	// MinCountriesPerRep is the fewest countries a representative should cover
	MinCountriesPerRep = 3
)

// MinSalesReps returns the fewest representatives that can cover countryCount
// countries without anyone exceeding MaxCountriesPerRep.
//
// A remainder below MinCountriesPerRep still gets its own representative; the
// allocator then evens the load out so nobody ends up short.
func MinSalesReps(countryCount int) (int, error) {
	if countryCount <= 0 {
		return 0, &DomainError{Err: ErrEmptyRegion}
	}
	reps := countryCount / MaxCountriesPerRep
	if countryCount%MaxCountriesPerRep != 0 {
		reps++
	}
	return reps, nil
}

// MaxSalesReps returns the most representatives that each still get
// MinCountriesPerRep countries. Regions smaller than that get one.
func MaxSalesReps(countryCount int) int {
	if countryCount < MinCountriesPerRep {
		return 1
	}
	return countryCount / MinCountriesPerRep
}

// CalculateSalesReps reports the representative count window for every region
// in countries, in the order regions first appear.
func CalculateSalesReps(countries []models.Country) ([]models.SalesRepRange, error) {
	groups := GroupByRegion(countries)
	ranges := make([]models.SalesRepRange, 0, len(groups))
	for _, g := range groups {
		minReps, err := MinSalesReps(len(g.Countries))
		if err != nil {
			return nil, withRegion(err, g.Region)
		}
		ranges = append(ranges, models.SalesRepRange{
			Region:      g.Region,
			MinSalesRep: minReps,
			MaxSalesRep: MaxSalesReps(len(g.Countries)),
		})
	}
	return ranges, nil
}

// withRegion stamps the region onto a DomainError raised without one.
func withRegion(err error, region string) error {
	if de, ok := err.(*DomainError); ok && de.Region == "" {
		return &DomainError{Region: region, Err: de.Err}
	}
	return err
}
