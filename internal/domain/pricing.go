package domain

import "math"

// PrivateTourPrice is the price quote shown on the private-tour guest step
type PrivateTourPrice struct {
	PerPerson float64
	Total     float64
}

// CalcPrivateTourPrice computes the private-tour quote for a party size.
// For groups up to PrivateTourPriceTier the total is the flat rate and the
// per-person price is floor(total/N)+0.95, so it always ends in .95.
// Above the tier the per-person price is fixed and the total scales linearly.
func CalcPrivateTourPrice(guests int) PrivateTourPrice {
	if guests < MinGuests {
		guests = MinGuests
	}

	if guests <= PrivateTourPriceTier {
		perPerson := math.Floor(PrivateTourFlatTotal/float64(guests)) + 0.95
		return PrivateTourPrice{
			PerPerson: perPerson,
			Total:     PrivateTourFlatTotal,
		}
	}

	return PrivateTourPrice{
		PerPerson: PrivateTourPerPersonXL,
		Total:     float64(guests) * PrivateTourPerPersonXL,
	}
}
