package booking

type PriceCalculator interface {
	TotalCents(nightlyRateCents int64, stay StayRange) int64
}

// NightlyRateCalculator charges a flat nightly rate per night of the stay.
// Integer cents arithmetic keeps currency exact for any rate and duration.
type NightlyRateCalculator struct{}

func NewNightlyRateCalculator() *NightlyRateCalculator {
	return &NightlyRateCalculator{}
}

func (c *NightlyRateCalculator) TotalCents(nightlyRateCents int64, stay StayRange) int64 {
	return nightlyRateCents * int64(stay.Nights())
}
